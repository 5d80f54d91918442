package validate

import (
	"cmp"
	"slices"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// Validate runs every built-in rule against the document and returns the
// combined diagnostics sorted by source position, then code. The document
// is not modified; callers append the result to doc.Diagnostics themselves.
func Validate(doc *ast.Document) []ast.Diagnostic {
	return ValidateWith(DefaultRegistry, doc)
}

// ValidateWith runs the rules of the given registry against the document.
func ValidateWith(reg *Registry, doc *ast.Document) []ast.Diagnostic {
	var diags []ast.Diagnostic
	for _, rule := range reg.Rules() {
		diags = append(diags, rule.Check(doc)...)
	}
	SortDiagnostics(diags)
	return diags
}

// SortDiagnostics orders diagnostics by source position, then code. The
// sort is stable so equal positions keep their emission order.
func SortDiagnostics(diags []ast.Diagnostic) {
	slices.SortStableFunc(diags, func(a, b ast.Diagnostic) int {
		if c := cmp.Compare(a.Span.StartOffset, b.Span.StartOffset); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Span.StartLine, b.Span.StartLine); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
}
