package website

import "strings"

// DocURL joins BaseURL, DocsURL, the language and doc into one relative path.
// DocsURL and language each contribute a trailing "/" only when non-empty, so
// empty parts never leave a doubled or dangling separator behind.
func (c SiteConfig) DocURL(doc, language string) string {
	var sb strings.Builder
	sb.WriteString(c.BaseURL)
	if c.DocsURL != "" {
		sb.WriteString(c.DocsURL)
		sb.WriteString("/")
	}
	if language != "" {
		sb.WriteString(language)
		sb.WriteString("/")
	}
	sb.WriteString(doc)
	return sb.String()
}

// PageURL links a page below BaseURL, prefixed with the language when set.
func (c SiteConfig) PageURL(page, language string) string {
	var sb strings.Builder
	sb.WriteString(c.BaseURL)
	if language != "" {
		sb.WriteString(language)
		sb.WriteString("/")
	}
	sb.WriteString(page)
	return sb.String()
}

// AssetURL resolves a site-relative asset path such as "img/offline.svg".
func (c SiteConfig) AssetURL(path string) string {
	return c.BaseURL + path
}

// docFile turns a doc id into the file the doc generator emits for it.
func (c SiteConfig) docFile(doc string) string {
	if c.CleanURL || strings.HasSuffix(doc, ".html") {
		return doc
	}
	return doc + ".html"
}

// HeaderLinkURL resolves the href of a header link. Search links have none.
func (c SiteConfig) HeaderLinkURL(l HeaderLink, language string) string {
	switch l.Kind() {
	case LinkDoc:
		return c.DocURL(c.docFile(l.Doc), language)
	case LinkPage:
		return c.PageURL(c.docFile(l.Page), language)
	case LinkExternal:
		return l.Href
	default:
		return ""
	}
}

// DefaultLanguage is the first configured language, or "" when none is set.
func (c SiteConfig) DefaultLanguage() string {
	if len(c.Languages) == 0 {
		return ""
	}
	return c.Languages[0]
}
