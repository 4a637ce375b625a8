package website

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is used when the configured theme is unknown to chroma.
const DefaultHighlightStyle = "github"

// Highlight configures syntax highlighting of fenced code in markdown.
type Highlight struct {
	// Theme is a chroma style name
	Theme string `mapstructure:"theme" yaml:"theme"`
	// Register adds custom grammars before the first render
	Register func(LanguageRegistry) `mapstructure:"-" yaml:"-"`
}

// Style returns the theme when chroma knows it, DefaultHighlightStyle otherwise.
func (h Highlight) Style() string {
	if _, ok := styles.Registry[h.Theme]; ok {
		return h.Theme
	}
	return DefaultHighlightStyle
}

// LanguageRegistry associates grammars with the highlighter.
type LanguageRegistry interface {
	RegisterLanguage(lexer chroma.Lexer)
	Language(name string) chroma.Lexer
}

// chromaRegistry writes into chroma's global registry, which is the one the
// markdown highlighter looks languages up in.
type chromaRegistry struct {
	mu  *sync.Mutex
	reg *chroma.LexerRegistry
}

var registryMu sync.Mutex

// GlobalLanguages returns the registry shared with the markdown highlighter.
func GlobalLanguages() LanguageRegistry {
	return chromaRegistry{mu: &registryMu, reg: lexers.GlobalLexerRegistry}
}

func (r chromaRegistry) RegisterLanguage(lexer chroma.Lexer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reg.Register(lexer)
}

func (r chromaRegistry) Language(name string) chroma.Lexer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reg.Get(name)
}

// RegisterReason is the default Register hook. It adds the Reason grammar.
func RegisterReason(reg LanguageRegistry) {
	reg.RegisterLanguage(ReasonLexer)
}

// ReasonLexer highlights ReasonML sources.
var ReasonLexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Reason",
		Aliases:   []string{"reason", "reasonml", "re"},
		Filenames: []string{"*.re", "*.rei"},
		MimeTypes: []string{"text/x-reason"},
	},
	reasonRules,
)

func reasonRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Text},
			{Pattern: `//[^\n]*`, Type: chroma.CommentSingle},
			{Pattern: `/\*`, Type: chroma.CommentMultiline, Mutator: chroma.Push("comment")},
			{Pattern: `"(\\.|[^"\\])*"`, Type: chroma.LiteralString},
			{Pattern: `'(\\.|[^'\\])'`, Type: chroma.LiteralStringChar},
			{Pattern: chroma.Words(`\b`, `\b`,
				"and", "as", "assert", "constraint", "else", "exception", "external", "false",
				"for", "fun", "if", "in", "include", "lazy", "let", "module", "mutable", "of",
				"open", "rec", "switch", "to", "true", "try", "type", "when", "while", "with",
			), Type: chroma.Keyword},
			{Pattern: `[A-Z][A-Za-z0-9_']*`, Type: chroma.NameClass},
			{Pattern: `[a-z_][A-Za-z0-9_']*`, Type: chroma.Name},
			{Pattern: `\d[\d_]*(\.[\d_]+)?`, Type: chroma.LiteralNumber},
			{Pattern: `=>|->|\|>|[-+*/=<>!&|^@~.:]+`, Type: chroma.Operator},
			{Pattern: `[{}()\[\],;]`, Type: chroma.Punctuation},
			{Pattern: `.`, Type: chroma.Text},
		},
		"comment": {
			{Pattern: `[^/*]+`, Type: chroma.CommentMultiline},
			{Pattern: `\*/`, Type: chroma.CommentMultiline, Mutator: chroma.Pop(1)},
			{Pattern: `[*/]`, Type: chroma.CommentMultiline},
		},
	}
}
