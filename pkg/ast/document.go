package ast

// Document is the root of a parsed SurfDoc: an ordered sequence of top-level
// blocks, an optional front-matter mapping supplied by the caller, and the
// diagnostics collected across scan, build, and validate.
//
// A Document is built once per parse and is not mutated afterwards;
// renderers only read it, so one tree may be rendered by many goroutines
// concurrently.
type Document struct {
	Blocks      []Block
	FrontMatter map[string]string
	Diagnostics []Diagnostic

	// Source is the normalized (LF-only) input text the spans index into.
	Source string
}

// SiteRoot returns the first top-level Site block, or nil when the document
// is not a multi-page site.
func (d *Document) SiteRoot() *Site {
	for _, b := range d.Blocks {
		if s, ok := b.(*Site); ok {
			return s
		}
	}
	return nil
}

// Pages returns the Page children of the document's Site root in document
// order. Orphan pages outside a Site are not included.
func (d *Document) Pages() []*Page {
	site := d.SiteRoot()
	if site == nil {
		return nil
	}
	var pages []*Page
	for _, b := range site.Blocks {
		if p, ok := b.(*Page); ok {
			pages = append(pages, p)
		}
	}
	return pages
}
