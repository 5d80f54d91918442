package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/surfdoc/internal/ui/pretty"
	"github.com/yaklabco/surfdoc/pkg/analysis"
	"github.com/yaklabco/surfdoc/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalIssues int

	if r.opts.GroupByFile {
		totalIssues = r.reportGrouped(ctx, result)
	} else {
		totalIssues = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return totalIssues, nil
}

// reportGrouped writes diagnostics grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		// Handle file errors
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil {
			continue
		}

		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		// File header
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(diagnostics)))

		lines := r.sourceLines(file)
		for _, diag := range diagnostics {
			sourceLine := lineAt(lines, diag.Span.StartLine)
			name := analysis.CodeName(diag.Code)
			fmt.Fprint(r.bw, r.styles.FormatDiagnosticWithFormat(file.Path, diag, name, r.opts.ShowContext, sourceLine, r.opts.CodeFormat))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes diagnostics without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		// Handle file errors
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil {
			continue
		}

		lines := r.sourceLines(file)
		for _, diag := range file.Result.Diagnostics {
			sourceLine := lineAt(lines, diag.Span.StartLine)
			name := analysis.CodeName(diag.Code)
			fmt.Fprint(r.bw, r.styles.FormatDiagnosticWithFormat(file.Path, diag, name, r.opts.ShowContext, sourceLine, r.opts.CodeFormat))
			total++
		}
	}

	return total
}

// sourceLines splits the normalized document text once per file.
// Returns nil when context display is disabled or no source is available.
func (r *TextReporter) sourceLines(file runner.FileOutcome) []string {
	if !r.opts.ShowContext || file.Result == nil || file.Result.Document == nil {
		return nil
	}
	if file.Result.Document.Source == "" {
		return nil
	}
	return strings.Split(file.Result.Document.Source, "\n")
}

// lineAt returns the 1-based line from a pre-split source, or "" when out of range.
func lineAt(lines []string, lineNum int) string {
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
