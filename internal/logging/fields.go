// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor  = "flavor"
	FieldFormat  = "format"
	FieldWorkers = "workers"
	FieldJobs    = "jobs"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesChecked     = "files_checked"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldPagesRendered    = "pages_rendered"

	// Site fields.
	FieldRoute    = "route"
	FieldSiteName = "site_name"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Diagnostic fields.
	FieldCode        = "code"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
