package site

// HeadEntry is one element of a document head. Exactly one of Title, Name,
// Property or Rel is set.
type HeadEntry struct {
	Title string

	// <meta name=... content=...>
	Name string
	// <meta property=... content=...>
	Property string
	Content  string

	// <link rel=... href=... crossorigin=...>
	Rel         string
	Href        string
	CrossOrigin string
}

// Title returns the <title> entry
func Title(title string) HeadEntry {
	return HeadEntry{Title: title}
}

// Meta returns a <meta name> entry
func Meta(name, content string) HeadEntry {
	return HeadEntry{Name: name, Content: content}
}

// Property returns a <meta property> entry, used by Open Graph tags
func Property(property, content string) HeadEntry {
	return HeadEntry{Property: property, Content: content}
}

// Link returns a <link> entry
func Link(rel, href string) HeadEntry {
	return HeadEntry{Rel: rel, Href: href}
}

// IsTitle reports whether e is the document title
func (e HeadEntry) IsTitle() bool {
	return e.Title != ""
}

// IsMeta reports whether e is a <meta> element
func (e HeadEntry) IsMeta() bool {
	return e.Name != "" || e.Property != ""
}

// IsLink reports whether e is a <link> element
func (e HeadEntry) IsLink() bool {
	return e.Rel != ""
}
