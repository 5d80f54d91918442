package reporter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/surfdoc/pkg/analysis"
)

func TestSummaryRenderer_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Options{
		Writer: &buf,
		Color:  "never",
	}

	renderer := NewSummaryRenderer(opts)
	report := &analysis.Report{
		Totals: analysis.Totals{},
	}

	err := renderer.Render(context.Background(), report)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "No issues found")
}

func TestSummaryRenderer_ShowsBothTables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Options{
		Writer: &buf,
		Color:  "never",
	}

	renderer := NewSummaryRenderer(opts)
	report := &analysis.Report{
		ByCode: []analysis.CodeAnalysis{
			{Code: "SD111", Name: "code-language-missing", Issues: 5, Errors: 0, Warnings: 5},
			{Code: "SD104", Name: "orphan-page", Issues: 2, Errors: 2, Warnings: 0},
		},
		ByFile: []analysis.FileAnalysis{
			{Path: "docs/intro.surf", Issues: 4, Errors: 1, Warnings: 3},
		},
		Totals: analysis.Totals{Issues: 7, Errors: 2, Warnings: 5, Files: 1, FilesWithIssues: 1},
	}

	err := renderer.Render(context.Background(), report)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Codes Summary")
	assert.Contains(t, output, "SD111/code-language-missing")
	assert.Contains(t, output, "SD104/orphan-page")
	assert.Contains(t, output, "Files Summary")
	assert.Contains(t, output, "docs/intro.surf")
	assert.Contains(t, output, "Total:")
	assert.Contains(t, output, "7 issues")
	assert.Contains(t, output, "2 errors")
	assert.Contains(t, output, "5 warnings")
	assert.Contains(t, output, "in 1 file")
}

func TestSummaryRenderer_BareCodeWithoutName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Options{
		Writer: &buf,
		Color:  "never",
	}

	renderer := NewSummaryRenderer(opts)
	report := &analysis.Report{
		ByCode: []analysis.CodeAnalysis{
			{Code: "SD104", Issues: 1, Errors: 1},
		},
		Totals: analysis.Totals{Issues: 1, Errors: 1, Files: 1, FilesWithIssues: 1},
	}

	err := renderer.Render(context.Background(), report)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "SD104")
}

func TestSummaryRenderer_TruncatesLongPaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := Options{
		Writer: &buf,
		Color:  "never",
	}

	longPath := "docs/guides/deeply/nested/directory/structure/with/a/very/long/file-name-that-keeps-going.surf"

	renderer := NewSummaryRenderer(opts)
	report := &analysis.Report{
		ByFile: []analysis.FileAnalysis{
			{Path: longPath, Issues: 1, Warnings: 1},
		},
		Totals: analysis.Totals{Issues: 1, Warnings: 1, Files: 1, FilesWithIssues: 1},
	}

	err := renderer.Render(context.Background(), report)
	require.NoError(t, err)

	output := buf.String()
	assert.NotContains(t, output, longPath)
	assert.Contains(t, output, "file-name-that-keeps-going.surf")
}

func TestPadHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "   ab", padLeft("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))
	assert.Equal(t, "abcdef", padLeft("abcdef", 5))
}
