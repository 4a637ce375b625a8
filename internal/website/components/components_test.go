package components

import (
	"bytes"
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testConfig() website.SiteConfig {
	return website.SiteConfig{
		Title:      "PocketMesh",
		Tagline:    "Framework for creating collaborative P2P web apps",
		BaseURL:    "/",
		DocsURL:    "docs",
		HeaderIcon: "img/logo.svg",
		RepoURL:    "https://github.com/jhrdina/pocket-mesh",
		Copyright:  "Copyright © 2020 Jan Hrdina",
		HeaderLinks: []website.HeaderLink{
			{Doc: "getting-started", Label: "Docs"},
			{Page: "api", Label: "API", External: true},
			{Href: "https://github.com/jhrdina/pocket-mesh", Label: "GitHub", External: true},
			{Search: true},
		},
		CleanURL: true,
	}
}

func TestRenderSplash(t *testing.T) {
	html := render(t, RenderSplash(testConfig(), SplashOptions{
		Buttons: []website.Button{
			{Label: "Demo App", Href: "https://tree-burst.hrdinajan.cz", Primary: true, Target: "_blank"},
			{Label: "Get started", Href: "/docs/getting-started.html"},
		},
	}))

	for _, want := range []string{
		`<h2 class="projectTitle">PocketMesh<small>Framework for creating collaborative P2P web apps</small></h2>`,
		`<a class="button button--primary" href="https://tree-burst.hrdinajan.cz" target="_blank" rel="noopener noreferrer">Demo App</a>`,
		`<a class="button" href="/docs/getting-started.html">Get started</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("splash missing %q in %s", want, html)
		}
	}
	if strings.Index(html, "Demo App") > strings.Index(html, "Get started") {
		t.Error("buttons rendered out of order")
	}
	if strings.Contains(html, "projectLogo") {
		t.Error("logo rendered without Logo option")
	}
}

func TestBlockElementClass(t *testing.T) {
	tests := []struct {
		name    string
		content website.ContentBlock
		layout  website.Layout
		align   string
		want    string
	}{
		{"defaults", website.ContentBlock{}, website.LayoutDefault, "center", "blockElement alignCenter imageAlignTop"},
		{"three columns", website.ContentBlock{ImageAlign: website.ImageTop}, website.LayoutThreeColumn, "center", "blockElement alignCenter imageAlignTop threeByGridBlock"},
		{"image right", website.ContentBlock{ImageAlign: website.ImageRight}, website.LayoutDefault, "left", "blockElement alignLeft imageAlignRight"},
		{"two columns", website.ContentBlock{ImageAlign: website.ImageBottom}, website.LayoutTwoColumn, "right", "blockElement alignRight imageAlignBottom twoByGridBlock"},
		{"four columns", website.ContentBlock{ImageAlign: website.ImageLeft}, website.LayoutFourColumn, "center", "blockElement alignCenter imageAlignLeft fourByGridBlock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockElementClass(tt.content, tt.layout, tt.align); got != tt.want {
				t.Errorf("BlockElementClass = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderBlock(t *testing.T) {
	md := website.NewMarkdown(website.Highlight{})

	html := render(t, RenderBlock(md, website.Block{
		ID:         "demo",
		Background: "light",
		Contents: []website.ContentBlock{
			{Title: "Right", Content: "text", Image: "/img/a.png", ImageAlign: website.ImageRight},
		},
	}))

	if !strings.Contains(html, `<div class="container lightBackground paddingBottom paddingTop" id="demo">`) {
		t.Errorf("unexpected container in %s", html)
	}
	if !strings.Contains(html, "blockElement alignCenter imageAlignRight") {
		t.Errorf("block alignment should default to center: %s", html)
	}
	if strings.Index(html, "blockContent") > strings.Index(html, "blockImage") {
		t.Error("image aligned right should follow the content")
	}
	if !strings.Contains(html, "<h2>Right</h2>") {
		t.Errorf("title missing: %s", html)
	}
}

func TestRenderBlock_ImageFirst(t *testing.T) {
	md := website.NewMarkdown(website.Highlight{})

	for _, align := range []website.ImageAlign{"", website.ImageTop, website.ImageLeft} {
		html := render(t, RenderGridBlock(md, []website.ContentBlock{
			{Content: "text", Image: "/img/a.png", ImageAlign: align},
		}, website.LayoutDefault, "center"))
		if strings.Index(html, "blockImage") > strings.Index(html, "blockContent") {
			t.Errorf("align %q: image should precede content", align)
		}
	}
}

func TestRenderBlock_NoBackgroundNoID(t *testing.T) {
	md := website.NewMarkdown(website.Highlight{})

	html := render(t, RenderBlock(md, website.Block{Contents: []website.ContentBlock{{Content: "x"}}}))
	if !strings.HasPrefix(html, `<div class="container paddingBottom paddingTop"><div class="wrapper">`) {
		t.Errorf("unexpected container: %s", html)
	}
	if strings.Contains(html, "blockImage") {
		t.Error("image rendered for a block without one")
	}
}

func TestRenderHeader(t *testing.T) {
	html := render(t, RenderHeader(testConfig(), ""))

	order := []string{
		`<a href="/docs/getting-started">Docs</a>`,
		`<a href="/api" target="_blank" rel="noopener noreferrer">API</a>`,
		`<a href="https://github.com/jhrdina/pocket-mesh" target="_blank" rel="noopener noreferrer">GitHub</a>`,
		`id="search_input_react"`,
	}
	last := -1
	for _, want := range order {
		i := strings.Index(html, want)
		if i < 0 {
			t.Errorf("header missing %q in %s", want, html)
			continue
		}
		if i < last {
			t.Errorf("%q rendered out of order", want)
		}
		last = i
	}
	if !strings.Contains(html, `<img class="logo" src="/img/logo.svg" alt="PocketMesh">`) {
		t.Errorf("header logo missing: %s", html)
	}
}

func TestHeaderLinkLabel(t *testing.T) {
	if got := HeaderLinkLabel(website.HeaderLink{Doc: "intro"}); got != "intro" {
		t.Errorf("label fallback for doc = %q", got)
	}
	if got := HeaderLinkLabel(website.HeaderLink{Href: "https://x", Label: "X"}); got != "X" {
		t.Errorf("label = %q", got)
	}
}

func TestRenderFooter(t *testing.T) {
	html := render(t, RenderFooter(testConfig(), "cs", FooterOptions{DocsLink: "getting-started.html"}))

	for _, want := range []string{
		`<a href="/docs/cs/getting-started.html">Docs</a>`,
		`href="https://github.com/jhrdina/pocket-mesh"`,
		`<section class="copyright">Copyright © 2020 Jan Hrdina</section>`,
		`<a class="nav-home" href="/cs/">PocketMesh</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("footer missing %q in %s", want, html)
		}
	}
}

func TestPinnedUsers(t *testing.T) {
	users := []website.User{
		{Caption: "A", Pinned: true},
		{Caption: "B"},
		{Caption: "C", Pinned: true},
	}

	got := PinnedUsers(users)
	if len(got) != 2 || got[0].Caption != "A" || got[1].Caption != "C" {
		t.Errorf("PinnedUsers = %+v", got)
	}
	if PinnedUsers(nil) != nil {
		t.Error("PinnedUsers(nil) should be nil")
	}
}

func TestRenderShowcase(t *testing.T) {
	cfg := testConfig()
	if RenderShowcase(cfg, nil) != nil {
		t.Error("RenderShowcase with no users should be nil")
	}

	html := render(t, RenderShowcase(cfg, []website.User{
		{Caption: "User1", Image: "/img/undraw_open_source.svg", InfoLink: "https://www.facebook.com", Pinned: true},
	}))
	if !strings.Contains(html, `src="/img/undraw_open_source.svg"`) {
		t.Errorf("leading slash should not be doubled: %s", html)
	}
	if !strings.Contains(html, `href="https://www.facebook.com"`) {
		t.Errorf("info link missing: %s", html)
	}
}
