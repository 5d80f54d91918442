package scanner

import "strings"

// OpeningDirective classifies a single line as a directive opener and
// returns its colon depth, tag as written, and bracketed attribute text.
// The builder uses this when re-scanning container bodies.
func OpeningDirective(line string) (depth int, tag, rawAttrs string, ok bool) {
	return openingDirective(strings.TrimSpace(line))
}

// ClosingFence classifies a single line as a closing fence (colons only)
// and returns its depth.
func ClosingFence(line string) (depth int, ok bool) {
	return closingDepth(strings.TrimSpace(line))
}
