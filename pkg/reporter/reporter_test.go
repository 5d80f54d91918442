package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/config"
	"github.com/yaklabco/surfdoc/pkg/reporter"
	"github.com/yaklabco/surfdoc/pkg/runner"
	"github.com/yaklabco/surfdoc/pkg/surf"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
		{name: "dropped format", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSummary, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			}

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check")
}

func TestTextReporter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{},
		Stats: runner.Stats{
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTextReporter_WithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		ShowContext: false,
		GroupByFile: true,
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "guide.surf")
	assert.Contains(t, output, "SD104")
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "2 issues") // One-line summary format
}

func TestTextReporter_ShowContext(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		GroupByFile: true,
	})

	result := createTestResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "::page[route=/intro]")
	assert.Contains(t, output, "^")
}

func TestTextReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		GroupByFile: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "missing.surf", Error: assert.AnError},
		},
		Stats: runner.Stats{
			FilesErrored:          1,
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "missing.surf")
	assert.Contains(t, buf.String(), "error:")
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Should still produce valid JSON
	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_WithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", output.Version)
	assert.Len(t, output.Files, 1)
	assert.Len(t, output.Files[0].Diagnostics, 2)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Compact: true,
	})

	result := createTestResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	// Compact output should be a single line
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestJSONReporter_IncludesCodeName(t *testing.T) {
	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = reporter.FormatJSON

	rep := reporter.NewJSONReporter(opts)

	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "guide.surf",
			Result: &surf.Result{
				Document: &ast.Document{},
				Diagnostics: []ast.Diagnostic{
					ast.NewDiagnostic(
						ast.CodeCodeLanguageMissing,
						ast.SourceSpan{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 7},
						"code block has no language",
					),
				},
			},
		}},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	// JSON should contain both the code and its name
	assert.Contains(t, buf.String(), `"code": "SD111"`)
	assert.Contains(t, buf.String(), `"name": "code-language-missing"`)
}

func TestJSONReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "missing.surf", Error: assert.AnError},
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	require.Len(t, output.Files, 1)
	assert.NotEmpty(t, output.Files[0].Error)
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.NotNil(t, opts.ErrorWriter)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.True(t, opts.GroupByFile)
	assert.False(t, opts.Compact)
	assert.Equal(t, config.CodeFormatCombined, opts.CodeFormat)
}

func TestTextReporter_CodeFormat(t *testing.T) {
	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"
	opts.CodeFormat = config.CodeFormatName
	opts.ShowContext = false
	opts.ShowSummary = false

	rep := reporter.NewTextReporter(opts)

	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "guide.surf",
			Result: &surf.Result{
				Document: &ast.Document{},
				Diagnostics: []ast.Diagnostic{
					ast.NewDiagnostic(
						ast.CodeCodeLanguageMissing,
						ast.SourceSpan{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 7},
						"code block has no language",
					),
				},
			},
		}},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "code-language-missing")
	assert.NotContains(t, buf.String(), "SD111")
}

// createTestResult creates a test runner.Result with sample diagnostics.
func createTestResult() *runner.Result {
	source := strings.Repeat("prose line\n", 4) +
		"::page[route=/intro]\n" +
		"# Intro\n" +
		"::\n" +
		"more prose\n" +
		"text\n" +
		"::code\n"

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "guide.surf",
				Result: &surf.Result{
					Document: &ast.Document{Source: source},
					Diagnostics: []ast.Diagnostic{
						ast.NewDiagnostic(
							ast.CodeOrphanPage,
							ast.SourceSpan{StartLine: 5, StartColumn: 1, EndLine: 7, EndColumn: 3},
							"page is not referenced by any site",
						),
						ast.NewDiagnostic(
							ast.CodeCodeLanguageMissing,
							ast.SourceSpan{StartLine: 10, StartColumn: 1, EndLine: 10, EndColumn: 7},
							"code block has no language",
						),
					},
				},
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:       1,
			FilesChecked:          1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      2,
			DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 1},
		},
	}
}
