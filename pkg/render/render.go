// Package render provides the three SurfDoc renderers: semantic HTML,
// markdown degradation, and ANSI terminal output. Each renderer is a total
// function over the block tree: every typed variant, Unknown passthrough,
// and prose span produces output, and rendering the same document twice
// yields identical text.
package render

import (
	"html"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// PageMeta carries the metadata for full-page HTML output.
type PageMeta struct {
	// SourcePath is the original .surf file, served alongside the built
	// page and referenced from <link rel="alternate">.
	SourcePath string

	// Title overrides the front-matter title. Empty falls back to the
	// document front matter, then to "SurfDoc".
	Title string

	Description  string
	CanonicalURL string

	// Lang is the HTML language code; empty means "en".
	Lang string
}

func escape(s string) string {
	return html.EscapeString(s)
}

// anchor renders the id attribute for blocks that carry one.
func anchor(b ast.Block) string {
	a, ok := b.(ast.Anchored)
	if !ok || a.AnchorID() == "" {
		return ""
	}
	return ` id="` + escape(a.AnchorID()) + `"`
}
