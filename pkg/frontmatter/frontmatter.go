// Package frontmatter extracts the optional YAML header from a SurfDoc
// source. The header sits between a leading `---` line and a closing
// `---` line; everything after the closer is the document body.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Split separates the front-matter header from the body. When the source
// has no leading fence, or the fence never closes, the whole input is the
// body and the header is empty. The fences themselves are not part of
// either half. The returned body is LF-normalized; bodyLine is the
// 1-based line of the source where the body begins, so span arithmetic
// downstream stays file-relative.
func Split(src string) (header, body string, bodyLine int) {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != fence {
		return "", normalized, 1
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == fence {
			return strings.Join(lines[1:i], "\n"),
				strings.Join(lines[i+1:], "\n"), i + 2
		}
	}
	return "", normalized, 1
}

// Parse decodes a front-matter header into a flat string map. Scalar
// values are stringified; nested structures are rejected.
func Parse(header string) (map[string]string, error) {
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(header), &raw); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			out[k] = val
		case bool, int, int64, uint64, float64:
			out[k] = fmt.Sprint(val)
		case nil:
			out[k] = ""
		default:
			return nil, fmt.Errorf("front matter key %q has a non-scalar value", k)
		}
	}
	return out, nil
}

// Extract splits and parses in one step. Malformed YAML degrades the
// whole input to body text with no front matter, matching the parser's
// never-fail posture.
func Extract(src string) (map[string]string, string, int) {
	header, body, bodyLine := Split(src)
	if header == "" {
		return nil, body, bodyLine
	}
	fm, err := Parse(header)
	if err != nil {
		return nil, strings.ReplaceAll(src, "\r\n", "\n"), 1
	}
	return fm, body, bodyLine
}
