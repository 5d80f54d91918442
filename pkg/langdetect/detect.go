// Package langdetect guesses a fence tag for code directive bodies that
// omit the lang attribute, so the HTML renderer can still emit a
// highlighting class.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is the tag returned when no detection path is confident.
const Fallback = "text"

// classifierCandidates bounds go-enry's classifier to languages that
// plausibly show up inside a code directive.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect guesses the language of a code directive body. A shebang wins
// outright, then cheap structural probes, then go-enry's classifier;
// anything inconclusive falls back to Fallback.
func Detect(content []byte) string {
	if len(content) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	for _, probe := range probes {
		if lang := probe(content); lang != "" {
			return lang
		}
	}

	// The classifier result only counts when enry marks it safe.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Fallback
}

// probes are structural checks ordered most specific first. Each returns
// a fence tag, or empty when the content does not match.
var probes = []func(content []byte) string{
	probeGo,
	probePython,
	probeHTML,
	probeJSON,
	probeDockerfile,
	probeSQL,
	probeRust,
	probeJavaScript,
	probeYAML,
}

func probeGo(content []byte) string {
	if bytes.HasPrefix(bytes.TrimSpace(content), []byte("package ")) {
		return "go"
	}
	return ""
}

func probePython(content []byte) string {
	text := string(content)
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return "python"
	}
	// Imports, excluding Go's grouped form.
	if strings.Contains(text, "import ") && !strings.Contains(text, "import (") {
		if strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ") {
			return "python"
		}
	}
	if strings.Contains(text, "__name__") || strings.Contains(text, "__main__") {
		return "python"
	}
	return ""
}

func probeHTML(content []byte) string {
	lower := bytes.ToLower(bytes.TrimSpace(content))
	if bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>")) {
		return "html"
	}
	return ""
}

func probeJSON(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return "json"
	}
	return ""
}

func probeDockerfile(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("FROM ")) ||
		(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
		(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY "))) {
		return "dockerfile"
	}
	return ""
}

func probeSQL(content []byte) string {
	upper := strings.TrimSpace(strings.ToUpper(string(content)))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return "sql"
		}
	}
	return ""
}

func probeRust(content []byte) string {
	text := string(content)
	if strings.Contains(text, "fn main()") ||
		strings.Contains(text, "println!") ||
		strings.Contains(text, "let mut ") {
		return "rust"
	}
	return ""
}

func probeJavaScript(content []byte) string {
	text := string(content)
	if strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") ||
		strings.Contains(text, "let ") ||
		strings.Contains(text, "console.log") {
		return "javascript"
	}
	return ""
}

// probeYAML counts key: value pairs and root-level list items; two or
// more reads as YAML. Lines that look like code are excluded.
func probeYAML(content []byte) string {
	hits := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			hits++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			hits++
		}
	}
	if hits >= 2 {
		return "yaml"
	}
	return ""
}

// fenceTag converts a go-enry language name to the lowercase tag used in
// markdown fences and language- CSS classes.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
