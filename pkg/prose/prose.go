// Package prose renders the markdown spans between directives. SurfDoc
// treats prose as opaque CommonMark and hands it to goldmark; directive
// content never passes through here.
package prose

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Flavor identifies the markdown flavor the engine accepts.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Engine converts markdown prose to HTML. It is safe for concurrent use;
// goldmark instances are stateless across Convert calls.
type Engine struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a prose engine for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else falls back to gfm, which is what
// SurfDoc documents are written against.
func New(flavor string) *Engine {
	f := flavorOrDefault(flavor)
	return &Engine{flavor: f, md: newGoldmark(f)}
}

// Flavor returns the configured markdown flavor.
func (e *Engine) Flavor() string {
	return e.flavor
}

// HTML renders one prose span to an HTML fragment.
func (e *Engine) HTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorGFM
	}
}

func newGoldmark(flavor string) goldmark.Markdown {
	// Raw HTML passes through: prose authors may embed their own markup,
	// and directive content never reaches this renderer.
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}
