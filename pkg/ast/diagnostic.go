package ast

import "slices"

// Severity is the importance of a diagnostic. It is fixed per code so that
// tooling can gate on codes alone.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies one diagnostic rule family. The 19 codes are stable
// across versions; tooling may filter or suppress by code.
type Code string

// Lexical codes, emitted by the scanner and attribute parser.
const (
	CodeUnterminatedDirective Code = "SD001"
	CodeInvalidAttrSyntax     Code = "SD002"
	CodeDuplicateAttribute    Code = "SD003"
)

// Validator codes, one per rule family.
const (
	CodeRequiredAttrMissing      Code = "SD101"
	CodeAttrTypeMismatch         Code = "SD102"
	CodeInvalidEnumValue         Code = "SD103"
	CodeOrphanPage               Code = "SD104"
	CodeSiteWithoutPages         Code = "SD105"
	CodeEmptyContainer           Code = "SD106"
	CodeFAQEntryIncomplete       Code = "SD107"
	CodePricingTierMismatch      Code = "SD108"
	CodeMetricValueInvalid       Code = "SD109"
	CodeDecisionOutcomeMissing   Code = "SD110"
	CodeCodeLanguageMissing      Code = "SD111"
	CodeFigureAltMissing         Code = "SD112"
	CodeTestimonialAuthorMissing Code = "SD113"
	CodeNestingTooDeep           Code = "SD114"
	CodeDuplicateID              Code = "SD115"
	CodePageOrderAmbiguous       Code = "SD116"
)

var codeSeverities = map[Code]Severity{
	CodeUnterminatedDirective:    SeverityError,
	CodeInvalidAttrSyntax:        SeverityError,
	CodeDuplicateAttribute:       SeverityError,
	CodeRequiredAttrMissing:      SeverityError,
	CodeAttrTypeMismatch:         SeverityError,
	CodeInvalidEnumValue:         SeverityError,
	CodeOrphanPage:               SeverityError,
	CodeSiteWithoutPages:         SeverityError,
	CodeEmptyContainer:           SeverityError,
	CodeFAQEntryIncomplete:       SeverityError,
	CodePricingTierMismatch:      SeverityError,
	CodeMetricValueInvalid:       SeverityError,
	CodeDecisionOutcomeMissing:   SeverityError,
	CodeCodeLanguageMissing:      SeverityWarning,
	CodeFigureAltMissing:         SeverityWarning,
	CodeTestimonialAuthorMissing: SeverityError,
	CodeNestingTooDeep:           SeverityError,
	CodeDuplicateID:              SeverityError,
	CodePageOrderAmbiguous:       SeverityWarning,
}

// SeverityFor returns the fixed severity for a code. Unknown codes default
// to error.
func SeverityFor(code Code) Severity {
	if s, ok := codeSeverities[code]; ok {
		return s
	}
	return SeverityError
}

// Codes returns all stable diagnostic codes in sorted order.
func Codes() []Code {
	out := make([]Code, 0, len(codeSeverities))
	for c := range codeSeverities {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Diagnostic is a coded, severity-tagged report of a parse or validation
// issue. Diagnostics never block building a tree; callers decide whether
// error-severity diagnostics should halt further use.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Span     SourceSpan

	// Related points at a second location for cross-reference issues,
	// e.g. the first occurrence of a duplicated id. Zero when unused.
	Related SourceSpan
}

// NewDiagnostic builds a diagnostic with the severity fixed by its code.
func NewDiagnostic(code Code, span SourceSpan, message string) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: SeverityFor(code),
		Message:  message,
		Span:     span,
	}
}

// WithRelated returns a copy of the diagnostic pointing at a related span.
func (d Diagnostic) WithRelated(span SourceSpan) Diagnostic {
	d.Related = span
	return d
}

// HasErrors reports whether any diagnostic in the list is error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of errors and warnings in the list.
func CountBySeverity(diags []Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
