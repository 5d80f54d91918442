package render

import (
	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/prose"
)

// Format selects which renderer Render dispatches to.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatTerm     Format = "term"
)

// IsValid reports whether the format is one Render understands.
func (f Format) IsValid() bool {
	switch f {
	case FormatHTML, FormatMarkdown, FormatTerm:
		return true
	}
	return false
}

// Config selects a renderer and its settings.
type Config struct {
	Format Format

	// Flavor is the prose markdown flavor for HTML output; empty means gfm.
	Flavor string

	// Standalone wraps HTML output in a full page using Meta.
	Standalone bool
	Meta       PageMeta

	// Color enables ANSI styling for terminal output.
	Color bool
}

// Render renders the document with the configured renderer. Unknown
// formats fall back to markdown, the lossless degradation.
func Render(doc *ast.Document, cfg Config) string {
	switch cfg.Format {
	case FormatHTML:
		r := NewHTML(flavorOr(cfg.Flavor))
		if cfg.Standalone {
			return r.Page(doc, cfg.Meta)
		}
		return r.Fragment(doc)
	case FormatTerm:
		return NewTerm(cfg.Color).Render(doc)
	default:
		return ToMarkdown(doc)
	}
}

func flavorOr(flavor string) string {
	if flavor == "" {
		return prose.FlavorGFM
	}
	return flavor
}
