// Package validate checks a built block tree against the directive schemas
// and structural rules, producing coded diagnostics. Rules never mutate the
// document; running them twice yields the same list.
package validate

import "github.com/yaklabco/surfdoc/pkg/ast"

// Rule is one validation rule family. Each rule owns exactly one
// diagnostic code.
type Rule interface {
	// Code returns the stable diagnostic code this rule emits.
	Code() ast.Code

	// Name returns the human-readable rule name (e.g., "orphan-page").
	Name() string

	// Description returns a short description of what the rule checks.
	Description() string

	// Check inspects the document and returns any diagnostics. The
	// document must not be modified.
	Check(doc *ast.Document) []ast.Diagnostic
}

// BaseRule provides the descriptive half of the Rule interface. Embed it
// in rule implementations and supply Check.
//
// Fields are unexported to avoid collisions with the interface methods.
type BaseRule struct {
	code ast.Code
	name string
	desc string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(code ast.Code, name, desc string) BaseRule {
	return BaseRule{code: code, name: name, desc: desc}
}

// Code returns the stable diagnostic code this rule emits.
func (r *BaseRule) Code() ast.Code {
	return r.code
}

// Name returns the human-readable rule name.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a short description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// report builds a diagnostic carrying this rule's code.
func (r *BaseRule) report(span ast.SourceSpan, message string) ast.Diagnostic {
	return ast.NewDiagnostic(r.code, span, message)
}
