// Package website provides the site configuration, URL helpers, markdown
// rendering and document shell for the PocketMesh site. Components under
// website/components and the page under website/landing build on it.
//
// Everything here is a pure function of a SiteConfig value. A SiteConfig is
// built once (see internal/config) and only read afterwards, so it can be
// shared between goroutines without locking.
package website

// SiteConfig describes site metadata. It is read-only after construction.
type SiteConfig struct {
	// Title is the project name shown in the splash and the browser tab
	Title string `mapstructure:"title" yaml:"title"`
	// Tagline is shown under the title
	Tagline string `mapstructure:"tagline" yaml:"tagline"`
	// URL is the absolute site URL (e.g. "https://pocket-mesh.hrdinajan.cz")
	URL string `mapstructure:"url" yaml:"url"`
	// BaseURL is the path prefix every internal link starts with (e.g. "/")
	BaseURL string `mapstructure:"baseUrl" yaml:"baseUrl"`
	// DocsURL is the docs directory below BaseURL, without slashes (may be empty)
	DocsURL string `mapstructure:"docsUrl" yaml:"docsUrl"`
	// CNAME is the custom domain written next to the output
	CNAME string `mapstructure:"cname" yaml:"cname"`

	ProjectName      string `mapstructure:"projectName" yaml:"projectName"`
	OrganizationName string `mapstructure:"organizationName" yaml:"organizationName"`

	// HeaderLinks are rendered in order in the top navigation
	HeaderLinks []HeaderLink `mapstructure:"headerLinks" yaml:"headerLinks"`
	// Users feed the "who is using this" section
	Users []User `mapstructure:"users" yaml:"users"`

	HeaderIcon string `mapstructure:"headerIcon" yaml:"headerIcon"`
	FooterIcon string `mapstructure:"footerIcon" yaml:"footerIcon"`
	Favicon    string `mapstructure:"favicon" yaml:"favicon"`
	Colors     Colors `mapstructure:"colors" yaml:"colors"`

	Highlight Highlight `mapstructure:"highlight" yaml:"highlight"`

	Copyright string   `mapstructure:"copyright" yaml:"copyright"`
	Scripts   []string `mapstructure:"scripts" yaml:"scripts"`
	// CleanURL drops the ".html" suffix from generated doc links
	CleanURL bool `mapstructure:"cleanUrl" yaml:"cleanUrl"`
	// Languages lists locale tags; the first one is rendered at the site root
	Languages []string `mapstructure:"languages" yaml:"languages"`

	// DemoURL is the hosted demo app linked from the splash
	DemoURL string `mapstructure:"demoUrl" yaml:"demoUrl"`
	// RepoURL is the source repository
	RepoURL string `mapstructure:"repoUrl" yaml:"repoUrl"`
}

// LinkKind distinguishes the header link variants.
type LinkKind int

const (
	LinkDoc LinkKind = iota
	LinkPage
	LinkExternal
	LinkSearch
)

func (k LinkKind) String() string {
	switch k {
	case LinkDoc:
		return "doc"
	case LinkPage:
		return "page"
	case LinkExternal:
		return "href"
	case LinkSearch:
		return "search"
	default:
		return "unknown"
	}
}

// HeaderLink is one navigation entry. Exactly one of Doc, Page, Href or
// Search is expected to be set; Kind resolves which.
type HeaderLink struct {
	// Doc is a documentation id, linked through DocURL
	Doc string `mapstructure:"doc" yaml:"doc,omitempty"`
	// Page is a page below BaseURL
	Page string `mapstructure:"page" yaml:"page,omitempty"`
	// Href is an absolute external URL
	Href string `mapstructure:"href" yaml:"href,omitempty"`
	// Search renders the search box in place of a link
	Search bool `mapstructure:"search" yaml:"search,omitempty"`
	// Label is the link text
	Label string `mapstructure:"label" yaml:"label,omitempty"`
	// External opens the link in a new tab
	External bool `mapstructure:"external" yaml:"external,omitempty"`
}

// Kind reports which variant the link is. Search wins over the others,
// then doc, page and href in that order.
func (l HeaderLink) Kind() LinkKind {
	switch {
	case l.Search:
		return LinkSearch
	case l.Doc != "":
		return LinkDoc
	case l.Page != "":
		return LinkPage
	default:
		return LinkExternal
	}
}

// User is an entry of the "who is using this" showcase.
type User struct {
	Caption  string `mapstructure:"caption" yaml:"caption"`
	Image    string `mapstructure:"image" yaml:"image"`
	InfoLink string `mapstructure:"infoLink" yaml:"infoLink"`
	Pinned   bool   `mapstructure:"pinned" yaml:"pinned"`
}

// Colors holds the theme colours. Values are passed through as CSS.
type Colors struct {
	PrimaryColor   string `mapstructure:"primaryColor" yaml:"primaryColor"`
	SecondaryColor string `mapstructure:"secondaryColor" yaml:"secondaryColor"`
}

// ImageAlign places a content block image relative to its text.
type ImageAlign string

const (
	ImageTop    ImageAlign = "top"
	ImageLeft   ImageAlign = "left"
	ImageRight  ImageAlign = "right"
	ImageBottom ImageAlign = "bottom"
)

// ContentBlock is one cell of a grid block.
type ContentBlock struct {
	// Content is markdown
	Content string
	// Image is a URL, already resolved against BaseURL
	Image string
	// ImageAlign defaults to ImageTop
	ImageAlign ImageAlign
	// Title is optional
	Title string
}

// Align returns the image alignment with the default applied.
func (b ContentBlock) Align() ImageAlign {
	if b.ImageAlign == "" {
		return ImageTop
	}
	return b.ImageAlign
}

// Layout selects how a block arranges its contents.
type Layout string

const (
	// LayoutDefault lets every content block lay itself out from its image alignment
	LayoutDefault Layout = ""
	// LayoutTwoColumn puts blocks two side by side
	LayoutTwoColumn Layout = "twoColumn"
	// LayoutThreeColumn puts blocks three side by side
	LayoutThreeColumn Layout = "threeColumn"
	// LayoutFourColumn puts blocks four side by side
	LayoutFourColumn Layout = "fourColumn"
)

// Columns returns how many content blocks the layout places per row.
// The default layout returns 1.
func (l Layout) Columns() int {
	switch l {
	case LayoutTwoColumn:
		return 2
	case LayoutThreeColumn:
		return 3
	case LayoutFourColumn:
		return 4
	default:
		return 1
	}
}

// Block is an ordered group of content blocks plus display attributes.
type Block struct {
	ID         string
	Background string
	// Align is the text alignment of the grid, default "center"
	Align    string
	Layout   Layout
	Contents []ContentBlock
}

// TextAlign returns the block alignment with the default applied.
func (b Block) TextAlign() string {
	if b.Align == "" {
		return "center"
	}
	return b.Align
}

// Button is a splash call-to-action.
type Button struct {
	Label   string
	Href    string
	Primary bool
	// Target is the anchor target, e.g. "_blank"
	Target string
}
