package website

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdown_HTML(t *testing.T) {
	md := NewMarkdown(Highlight{})

	got := md.HTML("[**Try it out**](https://tree-burst.hrdinajan.cz)")
	want := `<a href="https://tree-burst.hrdinajan.cz"><strong>Try it out</strong></a>`
	if !strings.Contains(got, want) {
		t.Errorf("HTML = %q, want it to contain %q", got, want)
	}
}

func TestMarkdown_Inline(t *testing.T) {
	md := NewMarkdown(Highlight{})

	var buf bytes.Buffer
	if err := md.Inline("Ready for *offline*").Render(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Ready for <em>offline</em>" {
		t.Errorf("Inline = %q", got)
	}
}

func TestMarkdown_HighlightsWithClasses(t *testing.T) {
	md := NewMarkdown(Highlight{Theme: "github"})

	got := md.HTML("```go\npackage main\n```\n")
	if !strings.Contains(got, `class="chroma"`) {
		t.Errorf("expected chroma classes in %q", got)
	}
}

func TestRegisterReason(t *testing.T) {
	var called bool
	md := NewMarkdown(Highlight{Register: func(reg LanguageRegistry) {
		called = true
		RegisterReason(reg)
	}})
	if !called {
		t.Fatal("Register hook was not run")
	}

	for _, name := range []string{"reason", "reasonml", "re"} {
		if GlobalLanguages().Language(name) == nil {
			t.Errorf("language %q not registered", name)
		}
	}

	got := md.HTML("```reason\nlet x = 1;\n```\n")
	if !strings.Contains(got, "chroma") {
		t.Errorf("reason block not highlighted: %q", got)
	}
}

func TestHighlightStyle(t *testing.T) {
	if got := (Highlight{Theme: "monokai"}).Style(); got != "monokai" {
		t.Errorf("Style = %q, want monokai", got)
	}
	if got := (Highlight{Theme: "no-such-theme"}).Style(); got != DefaultHighlightStyle {
		t.Errorf("Style of unknown theme = %q, want %q", got, DefaultHighlightStyle)
	}
}

func TestMarkdownFor_Cached(t *testing.T) {
	runs := 0
	h := Highlight{Theme: "markdown-for-test", Register: func(LanguageRegistry) { runs++ }}

	a := MarkdownFor(h)
	b := MarkdownFor(h)
	if a != b {
		t.Error("MarkdownFor returned different converters for one theme")
	}
	if runs != 1 {
		t.Errorf("Register ran %d times, want 1", runs)
	}
}
