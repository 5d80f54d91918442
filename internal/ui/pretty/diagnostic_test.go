package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/surfdoc/internal/ui/pretty"
	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/config"
)

func TestFormatDiagnostic_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	diag := ast.NewDiagnostic(
		ast.CodeRequiredAttrMissing,
		ast.SourceSpan{StartLine: 10, StartColumn: 1, EndLine: 10, EndColumn: 15},
		"figure requires a src attribute",
	)

	result := styles.FormatDiagnostic("guide.surf", diag, "required-attribute-missing", false, "")

	assert.Contains(t, result, "guide.surf:10:1")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "figure requires a src attribute")
	assert.Contains(t, result, "(SD101/required-attribute-missing)")
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := ast.NewDiagnostic(
		ast.CodeCodeLanguageMissing,
		ast.SourceSpan{StartLine: 5, StartColumn: 3, EndLine: 5, EndColumn: 9},
		"code block has no language",
	)

	sourceLine := "::code"
	result := styles.FormatDiagnostic("guide.surf", diag, "", true, sourceLine)

	assert.Contains(t, result, "::code")
	assert.Contains(t, result, "^") // Caret marker
}

func TestFormatDiagnostic_WithRelatedSpan(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := ast.NewDiagnostic(
		ast.CodeUnterminatedDirective,
		ast.SourceSpan{StartLine: 12, StartColumn: 1, EndLine: 12, EndColumn: 1},
		"directive is never closed",
	).WithRelated(ast.SourceSpan{StartLine: 3, StartColumn: 1, EndLine: 3, EndColumn: 9})

	result := styles.FormatDiagnostic("guide.surf", diag, "unterminated-directive", false, "")

	assert.Contains(t, result, "related: line 3")
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity ast.Severity
		expected string
	}{
		{ast.SeverityError, "error"},
		{ast.SeverityWarning, "warning"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			result := styles.FormatSeverity(tt.severity)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatSourceContext_WithCaret(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 5)

	lines := strings.Split(result, "\n")
	assert.GreaterOrEqual(t, len(lines), 2) // Source line and caret line

	// Check caret position
	assert.Contains(t, result, "^")
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 0)

	// With column 0, no caret should be shown
	assert.Contains(t, result, "test line")
	assert.NotContains(t, result, "^")
}

func TestFormatFileHeader_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("docs/intro.surf", 5)

	assert.Contains(t, result, "docs/intro.surf")
	assert.Contains(t, result, "(5 issues)")
}

func TestFormatFileHeader_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("docs/intro.surf", 0)

	assert.Contains(t, result, "docs/intro.surf")
	assert.NotContains(t, result, "issues")
}

func TestFormatDiagnostic_WithCodeFormat(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := ast.NewDiagnostic(
		ast.CodeFigureAltMissing,
		ast.SourceSpan{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 2},
		"figure has no alt text",
	)

	tests := []struct {
		format   config.CodeFormat
		contains string
		excludes string
	}{
		{config.CodeFormatName, "(figure-alt-missing)", "(SD112)"},
		{config.CodeFormatID, "(SD112)", "(figure-alt-missing)"},
		{config.CodeFormatCombined, "(SD112/figure-alt-missing)", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			result := styles.FormatDiagnosticWithFormat("guide.surf", diag, "figure-alt-missing", false, "", tt.format)
			assert.Contains(t, result, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, result, tt.excludes)
			}
		})
	}
}

func TestFormatDiagnostic_UnknownCodeName(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := ast.NewDiagnostic(
		ast.CodeOrphanPage,
		ast.SourceSpan{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 2},
		"page is not referenced by any site",
	)

	// With no name available, the bare code is used regardless of format.
	result := styles.FormatDiagnosticWithFormat("guide.surf", diag, "", false, "", config.CodeFormatName)

	assert.Contains(t, result, "(SD104)")
}
