package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesStableSet(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 19)

	// Sorted, so lexical codes come first and validator codes follow.
	assert.Equal(t, CodeUnterminatedDirective, codes[0])
	assert.Equal(t, CodePageOrderAmbiguous, codes[len(codes)-1])
}

func TestSeverityFixedPerCode(t *testing.T) {
	warnings := []Code{
		CodeCodeLanguageMissing,
		CodeFigureAltMissing,
		CodePageOrderAmbiguous,
	}
	for _, c := range warnings {
		assert.Equal(t, SeverityWarning, SeverityFor(c), "%s", c)
	}

	for _, c := range Codes() {
		isWarn := false
		for _, w := range warnings {
			if c == w {
				isWarn = true
			}
		}
		if !isWarn {
			assert.Equal(t, SeverityError, SeverityFor(c), "%s", c)
		}
	}

	assert.Equal(t, SeverityError, SeverityFor(Code("SD999")))
}

func TestNewDiagnosticSeverityFromCode(t *testing.T) {
	d := NewDiagnostic(CodeFigureAltMissing, SourceSpan{StartLine: 3, EndLine: 3}, "figure has no alt text")
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, 3, d.Span.StartLine)

	d2 := d.WithRelated(SourceSpan{StartLine: 1, EndLine: 1})
	assert.Equal(t, 1, d2.Related.StartLine)
	assert.Zero(t, d.Related.StartLine, "WithRelated must not mutate the receiver")
}

func TestHasErrorsAndCounts(t *testing.T) {
	diags := []Diagnostic{
		NewDiagnostic(CodeFigureAltMissing, SourceSpan{}, "w"),
		NewDiagnostic(CodeOrphanPage, SourceSpan{}, "e"),
		NewDiagnostic(CodeCodeLanguageMissing, SourceSpan{}, "w"),
	}
	assert.True(t, HasErrors(diags))

	errs, warns := CountBySeverity(diags)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 2, warns)

	assert.False(t, HasErrors(nil))
}
