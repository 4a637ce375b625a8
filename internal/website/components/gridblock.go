package components

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// RenderBlock generates a padded container holding a grid of content blocks.
// The number of contents is not checked against the layout.
func RenderBlock(md *website.Markdown, b website.Block) g.Node {
	return Div(Class(containerClass(b.Background)),
		g.If(b.ID != "", ID(b.ID)),
		Div(Class("wrapper"),
			RenderGridBlock(md, b.Contents, b.Layout, b.TextAlign()),
		),
	)
}

func containerClass(background string) string {
	classes := []string{"container"}
	if background != "" {
		classes = append(classes, background+"Background")
	}
	classes = append(classes, "paddingBottom", "paddingTop")
	return strings.Join(classes, " ")
}

// RenderGridBlock arranges contents according to layout. align is the text
// alignment of every element; callers pass the defaulted value.
func RenderGridBlock(md *website.Markdown, contents []website.ContentBlock, layout website.Layout, align string) g.Node {
	return Div(Class("gridBlock"),
		g.Map(contents, func(c website.ContentBlock) g.Node {
			return renderBlockElement(md, c, layout, align)
		}),
	)
}

// BlockElementClass is the CSS class list of one grid cell.
func BlockElementClass(c website.ContentBlock, layout website.Layout, align string) string {
	classes := []string{
		"blockElement",
		"align" + capitalize(align),
		"imageAlign" + capitalize(string(c.Align())),
	}
	switch layout {
	case website.LayoutTwoColumn:
		classes = append(classes, "twoByGridBlock")
	case website.LayoutThreeColumn:
		classes = append(classes, "threeByGridBlock")
	case website.LayoutFourColumn:
		classes = append(classes, "fourByGridBlock")
	}
	return strings.Join(classes, " ")
}

func renderBlockElement(md *website.Markdown, c website.ContentBlock, layout website.Layout, align string) g.Node {
	image := g.If(c.Image != "", Div(Class("blockImage"),
		Img(Src(c.Image), Alt(c.Title)),
	))
	content := Div(Class("blockContent"),
		g.If(c.Title != "", H2(md.Inline(c.Title))),
		md.Node(c.Content),
	)

	// Top and left images come first in document order.
	switch c.Align() {
	case website.ImageTop, website.ImageLeft:
		return Div(Class(BlockElementClass(c, layout, align)), image, content)
	default:
		return Div(Class(BlockElementClass(c, layout, align)), content, image)
	}
}

func capitalize(s string) string {
	return cases.Title(language.Und).String(s)
}
