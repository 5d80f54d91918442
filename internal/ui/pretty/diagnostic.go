package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/config"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// Uses the combined code format.
func (s *Styles) FormatDiagnostic(path string, diag ast.Diagnostic, codeName string, showContext bool, sourceLine string) string {
	return s.FormatDiagnosticWithFormat(path, diag, codeName, showContext, sourceLine, config.CodeFormatCombined)
}

// FormatDiagnosticWithFormat formats a diagnostic with a configurable code identifier format.
// codeName is the human-readable name for the code; empty falls back to the bare code.
func (s *Styles) FormatDiagnosticWithFormat(path string, diag ast.Diagnostic, codeName string, showContext bool, sourceLine string, codeFormat config.CodeFormat) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		diag.Span.StartLine,
		diag.Span.StartColumn,
	)

	// Severity with prefix
	severity := s.FormatSeverity(diag.Severity)

	// Code identifier formatted according to config
	codeIdentifier := config.FormatCode(codeFormat, string(diag.Code), codeName)
	codeDisplay := s.CodeID.Render("(" + codeIdentifier + ")")

	// Main line: location  severity  message  (code)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
		codeDisplay,
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.Span.StartColumn))
	}

	// Related span, e.g. the opening fence of an unterminated directive
	if diag.Related.IsValid() {
		builder.WriteString("    " + s.Dim.Render(fmt.Sprintf("related: line %d", diag.Related.StartLine)) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev ast.Severity) string {
	switch sev {
	case ast.SeverityError:
		return s.Error.Render("error")
	case ast.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
