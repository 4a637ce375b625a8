package website

import (
	"bytes"
	"html"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	g "maragu.dev/gomponents"
)

// Markdown converts content-block markdown into element nodes.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown runs the Register hook of h against the global language
// registry and returns a converter using h's theme.
func NewMarkdown(h Highlight) *Markdown {
	if h.Register != nil {
		h.Register(GlobalLanguages())
	}

	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(h.Style()),
					highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				),
			),
			goldmark.WithRendererOptions(gmhtml.WithXHTML()),
		),
	}
}

// HTML renders src to an HTML string. Conversion into a memory buffer cannot
// fail, but if it ever does the source comes back escaped.
func (m *Markdown) HTML(src string) string {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return buf.String()
}

// Node renders src as a raw node.
func (m *Markdown) Node(src string) g.Node {
	return g.Raw(m.HTML(src))
}

// Inline renders src and strips the single paragraph goldmark wraps short
// texts in, for use inside headings.
func (m *Markdown) Inline(src string) g.Node {
	out := bytes.TrimSpace([]byte(m.HTML(src)))
	out = bytes.TrimPrefix(out, []byte("<p>"))
	out = bytes.TrimSuffix(out, []byte("</p>"))
	return g.Raw(string(out))
}

var (
	markdownMu    sync.Mutex
	markdownCache = map[string]*Markdown{}
)

// MarkdownFor returns the process-wide converter for h's theme. The Register
// hook runs only the first time a theme is seen; call it once before
// rendering concurrently so that registration happens up front.
func MarkdownFor(h Highlight) *Markdown {
	key := h.Theme
	markdownMu.Lock()
	defer markdownMu.Unlock()

	if m, ok := markdownCache[key]; ok {
		return m
	}
	m := NewMarkdown(h)
	markdownCache[key] = m
	return m
}
