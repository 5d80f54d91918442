package builder

import (
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// parsePipeTable parses pipe-delimited rows. The first non-empty line is
// the header row; markdown separator lines like |---|---| are skipped.
func parsePipeTable(content string) (headers []string, rows [][]string) {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isTableSeparator(trimmed) {
			continue
		}
		cells := splitPipeRow(trimmed)
		if headers == nil {
			headers = cells
		} else {
			rows = append(rows, cells)
		}
	}
	return headers, rows
}

func isTableSeparator(line string) bool {
	stripped := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "|"))
	if stripped == "" {
		return false
	}
	for _, cell := range strings.Split(stripped, "|") {
		for _, c := range strings.TrimSpace(cell) {
			if c != '-' && c != ':' {
				return false
			}
		}
	}
	return true
}

func splitPipeRow(line string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(line), "|"), "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// parseCSV parses newline-delimited, comma-separated rows with the first
// non-empty line as headers. Cells are trimmed; no quoting rules apply.
func parseCSV(content string) (headers []string, rows [][]string) {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		parts := strings.Split(trimmed, ",")
		cells := make([]string, len(parts))
		for i, p := range parts {
			cells[i] = strings.TrimSpace(p)
		}
		if headers == nil {
			headers = cells
		} else {
			rows = append(rows, cells)
		}
	}
	return headers, rows
}

// parseTaskItems reads checklist lines of the form `- [x] text @assignee`.
// Lines that are not checklist entries are ignored.
func parseTaskItems(content string) []ast.TaskItem {
	var items []ast.TaskItem
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		var done bool
		var rest string
		switch {
		case strings.HasPrefix(trimmed, "- [x] "), strings.HasPrefix(trimmed, "- [X] "):
			done, rest = true, trimmed[6:]
		case strings.HasPrefix(trimmed, "- [ ] "):
			done, rest = false, trimmed[6:]
		default:
			continue
		}
		text, assignee := extractAssignee(rest)
		items = append(items, ast.TaskItem{Done: done, Text: text, Assignee: assignee})
	}
	return items
}

// extractAssignee splits a trailing single-word ` @name` off the task text.
func extractAssignee(text string) (string, string) {
	trimmed := strings.TrimRight(text, " \t")
	at := strings.LastIndex(trimmed, " @")
	if at < 0 {
		return text, ""
	}
	candidate := trimmed[at+2:]
	if candidate == "" || strings.Contains(candidate, " ") {
		return text, ""
	}
	return strings.TrimRight(trimmed[:at], " \t"), candidate
}

// parseProperties reads `key: value` lines, skipping blanks and lines
// without both parts.
func parseProperties(content string) []ast.StyleProperty {
	var props []ast.StyleProperty
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		key, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			props = append(props, ast.StyleProperty{Key: key, Value: value})
		}
	}
	return props
}

// parseFAQItems splits the body on `###`/`##` headings; each heading is a
// question and the following text its answer. Text before the first
// heading is dropped.
func parseFAQItems(content string) []ast.FAQItem {
	var items []ast.FAQItem
	var question string
	var answer []string
	haveQuestion := false

	flush := func() {
		if haveQuestion {
			items = append(items, ast.FAQItem{
				Question: question,
				Answer:   strings.TrimSpace(strings.Join(answer, "\n")),
			})
			answer = answer[:0]
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "### "); ok {
			flush()
			question, haveQuestion = strings.TrimSpace(rest), true
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "## "); ok {
			flush()
			question, haveQuestion = strings.TrimSpace(rest), true
			continue
		}
		answer = append(answer, line)
	}
	flush()
	return items
}
