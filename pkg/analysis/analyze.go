package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/runner"
	"github.com/yaklabco/surfdoc/pkg/validate"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Severity string constants for internal use.
const (
	severityError   = "error"
	severityWarning = "warning"
)

// lexicalNames covers the scanner and attribute parser codes, which are
// not registered as validator rules.
//
//nolint:gochecknoglobals // Read-only lookup table.
var lexicalNames = map[ast.Code]string{
	ast.CodeUnterminatedDirective: "unterminated-directive",
	ast.CodeInvalidAttrSyntax:     "invalid-attribute-syntax",
	ast.CodeDuplicateAttribute:    "duplicate-attribute",
}

// CodeName resolves the human-readable name for a diagnostic code.
// Unknown codes resolve to an empty string.
func CodeName(code ast.Code) string {
	if name, ok := lexicalNames[code]; ok {
		return name
	}
	if rule, ok := validate.DefaultRegistry.Get(string(code)); ok {
		return rule.Name()
	}
	return ""
}

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	codeMap   map[string]*CodeAnalysis
	fileMap   map[string]*FileAnalysis
	codeFiles map[string]map[string]bool
	fileCodes map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		codeMap:   make(map[string]*CodeAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		codeFiles: make(map[string]map[string]bool),
		fileCodes: make(map[string]map[string]bool),
	}
}

// incrementSeverityCounts updates counts based on severity.
func incrementSeverityCounts(severity string, totals *Totals, fa *FileAnalysis) {
	switch severity {
	case severityError:
		totals.Errors++
		fa.Errors++
	case severityWarning:
		totals.Warnings++
		fa.Warnings++
	}
}

// incrementCodeSeverity updates code analysis severity counts.
func incrementCodeSeverity(severity string, ca *CodeAnalysis) {
	switch severity {
	case severityError:
		ca.Errors++
	case severityWarning:
		ca.Warnings++
	}
}

// getOrCreateFileAnalysis returns existing or creates new FileAnalysis.
func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileCodes[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

// getOrCreateCodeAnalysis returns existing or creates new CodeAnalysis.
func (ctx *analysisContext) getOrCreateCodeAnalysis(code, name string) *CodeAnalysis {
	if _, ok := ctx.codeMap[code]; !ok {
		ctx.codeMap[code] = &CodeAnalysis{
			Code: code,
			Name: name,
		}
		ctx.codeFiles[code] = make(map[string]bool)
	}
	return ctx.codeMap[code]
}

// createDiagnosticEntry builds a DiagnosticEntry from a parse diagnostic.
func createDiagnosticEntry(path string, diag ast.Diagnostic) DiagnosticEntry {
	return DiagnosticEntry{
		FilePath:    path,
		Code:        string(diag.Code),
		Name:        CodeName(diag.Code),
		Severity:    string(diag.Severity),
		Message:     diag.Message,
		StartLine:   diag.Span.StartLine,
		StartColumn: diag.Span.StartColumn,
		EndLine:     diag.Span.EndLine,
		EndColumn:   diag.Span.EndColumn,
	}
}

// buildByCode constructs the ByCode slice from accumulated data.
func (ctx *analysisContext) buildByCode(opts Options) []CodeAnalysis {
	result := make([]CodeAnalysis, 0, len(ctx.codeMap))
	for code, ca := range ctx.codeMap {
		for f := range ctx.codeFiles[code] {
			ca.Files = append(ca.Files, f)
		}
		slices.Sort(ca.Files)
		result = append(result, *ca)
	}
	sortCodeAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from accumulated data.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Issues == 0 {
			continue
		}
		for c := range ctx.fileCodes[path] {
			fa.Codes = append(fa.Codes, c)
		}
		slices.Sort(fa.Codes)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through diagnostics to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if file.Result == nil {
			continue
		}
		if len(file.Result.Diagnostics) > 0 {
			report.Totals.FilesWithIssues++
		}

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.getOrCreateFileAnalysis(displayPath)

		for _, diag := range file.Result.Diagnostics {
			report.Totals.Issues++
			severity := string(diag.Severity)
			code := string(diag.Code)

			incrementSeverityCounts(severity, &report.Totals, fa)

			fa.Issues++
			ctx.fileCodes[displayPath][code] = true

			ca := ctx.getOrCreateCodeAnalysis(code, CodeName(diag.Code))
			ca.Issues++
			incrementCodeSeverity(severity, ca)
			ctx.codeFiles[code][displayPath] = true

			if opts.IncludeDiagnostics {
				report.Diagnostics = append(report.Diagnostics, createDiagnosticEntry(displayPath, diag))
			}
		}
	}

	if opts.IncludeByCode {
		report.ByCode = ctx.buildByCode(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortCodeAnalysis(codes []CodeAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(codes, func(left, right CodeAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Code, right.Code)
		case SortBySeverity:
			// Errors first, then warnings (always descending by severity)
			result := cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(left.Code, right.Code)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Issues, right.Issues)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Code, right.Code)
			}
			return result
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			result := cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Issues, right.Issues)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		}
	})
}
