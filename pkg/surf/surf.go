// Package surf is the parse facade: one call runs front-matter
// extraction, scanning, building, and validation, and returns the
// document with every diagnostic the pipeline produced. Parsing never
// fails; malformed input degrades per stage and is reported through
// diagnostics.
package surf

import (
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/builder"
	"github.com/yaklabco/surfdoc/pkg/frontmatter"
	"github.com/yaklabco/surfdoc/pkg/scanner"
	"github.com/yaklabco/surfdoc/pkg/validate"
)

// Result is what Parse returns: the immutable document plus all
// diagnostics in source order.
type Result struct {
	Document    *ast.Document
	Diagnostics []ast.Diagnostic
}

// HasErrors reports whether any diagnostic is error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == ast.SeverityError {
			return true
		}
	}
	return false
}

// Option configures a Parse call.
type Option func(*options)

type options struct {
	frontMatter map[string]string
	maxDepth    int
}

// WithFrontMatter supplies an already-extracted front-matter map and
// disables header extraction; the input is treated as pure body text.
func WithFrontMatter(fm map[string]string) Option {
	return func(o *options) { o.frontMatter = fm }
}

// WithMaxDepth overrides the container nesting limit checked by the
// validator. Zero or negative keeps the default.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// Parse runs the full pipeline over one source text.
func Parse(text string, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Normalizing up front keeps the header byte offset consistent with
	// what the scanner indexes into.
	source := strings.ReplaceAll(text, "\r\n", "\n")
	fm, body, bodyLine := o.frontMatter, source, 1
	if fm == nil {
		fm, body, bodyLine = frontmatter.Extract(source)
	}

	res := scanner.ScanAt(body, bodyLine, len(source)-len(body))
	diags := append([]ast.Diagnostic(nil), res.Diagnostics...)

	blocks, buildDiags := builder.Build(res)
	diags = append(diags, buildDiags...)

	doc := &ast.Document{
		Blocks:      blocks,
		FrontMatter: fm,
		Source:      source,
	}

	diags = append(diags, validate.ValidateWith(registryFor(o), doc)...)
	validate.SortDiagnostics(diags)
	doc.Diagnostics = diags

	return &Result{Document: doc, Diagnostics: diags}
}

// registryFor picks the rule registry for the parse options. A custom
// nesting limit needs its own registry; everything else shares the
// default.
func registryFor(o options) *validate.Registry {
	if o.maxDepth <= 0 || o.maxDepth == validate.MaxNestingDepth {
		return validate.DefaultRegistry
	}
	reg := validate.NewRegistry()
	for _, rule := range validate.DefaultRegistry.Rules() {
		if rule.Code() == ast.CodeNestingTooDeep {
			rule = validate.NewNestingDepthRule(o.maxDepth)
		}
		reg.Register(rule)
	}
	return reg
}
