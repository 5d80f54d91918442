// Package scanner splits raw SurfDoc text into an alternating sequence of
// prose spans and directive spans. Directive bodies are kept as raw text;
// nested directives inside container bodies are tracked only for fence
// matching and re-scanned later by the builder.
package scanner

import (
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// SpanKind tags a scanned span as prose or directive.
type SpanKind uint8

const (
	SpanProse SpanKind = iota
	SpanDirective
)

// Span is one top-level region of the input: either a run of plain markdown
// lines or one complete `::tag[attrs] … ::` directive with its raw body.
type Span struct {
	Kind SpanKind

	// Tag is the directive tag folded to lower case. Empty for prose.
	Tag string

	// RawTag preserves the tag as written, for verbatim passthrough.
	RawTag string

	// RawAttrs is the bracketed attribute text exactly as written,
	// including the brackets. Empty when the directive has none.
	RawAttrs string

	// Attrs holds the parsed attribute map. Nil for prose.
	Attrs ast.Attrs

	// Body is the raw text between the opening line and the closing fence
	// for directives, or the prose text itself for prose spans. Nested
	// directive lines stay inside the body unparsed.
	Body string

	// BodyOffset is the byte offset of Body within the source, so callers
	// re-scanning container bodies can produce real source spans.
	BodyOffset int

	// Depth is the colon count of the opening fence. Zero for prose.
	Depth int

	Loc ast.SourceSpan
}

// Result carries the scanned spans and any lexical diagnostics.
type Result struct {
	Spans       []Span
	Diagnostics []ast.Diagnostic

	// Source is the normalized (LF-only) text the span offsets index into.
	Source string
}

// openDirective is one entry of the fence-matching stack.
type openDirective struct {
	tag      string
	rawTag   string
	rawAttrs string
	attrs    ast.Attrs
	depth    int // leading colon count; 2 = outermost
	diags    []ast.Diagnostic

	startLine    int // 1-based
	startOffset  int
	bodyOffset   int // byte offset just past the opening line's newline
	startColumns int
}

// Scan normalizes line endings and splits the input into spans. It never
// fails; malformed input yields best-effort spans plus diagnostics.
func Scan(input string) Result {
	source := strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(source, "\n")

	var (
		spans []Span
		diags []ast.Diagnostic
		stack []openDirective
	)

	// Start of the current top-level prose gap, or -1 when none is open.
	proseLine := -1
	proseOffset := 0

	offset := 0
	for idx, line := range lines {
		lineOffset := offset
		offset += len(line) + 1
		trimmed := strings.TrimSpace(line)

		if depth, ok := closingDepth(trimmed); ok {
			pos := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].depth == depth {
					pos = i
					break
				}
			}
			if pos >= 0 {
				// Unclosed directives deeper than the match are abandoned
				// at this fence.
				for len(stack) > pos+1 {
					orphan := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					diags = append(diags, unterminated(orphan, idx+1, lineOffset+len(line)))
				}

				open := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if len(stack) == 0 {
					body := strings.TrimSuffix(source[min(open.bodyOffset, lineOffset):lineOffset], "\n")
					diags = append(diags, open.diags...)
					spans = append(spans, directiveSpan(open, body, ast.SourceSpan{
						StartLine:   open.startLine,
						StartColumn: 1,
						EndLine:     idx + 1,
						EndColumn:   len(line) + 1,
						StartOffset: open.startOffset,
						EndOffset:   lineOffset + len(line),
					}))
					proseLine = -1
				}
				continue
			}
			// A fence with no matching open directive reads as prose.
		}

		if depth, rawTag, rawAttrs, ok := openingDirective(trimmed); ok {
			if len(stack) == 0 {
				spans = flushProse(spans, source, lines, proseLine, idx, proseOffset)
				proseLine = -1

				attrSpan := ast.SourceSpan{
					StartLine:   idx + 1,
					StartColumn: 1,
					EndLine:     idx + 1,
					EndColumn:   len(line) + 1,
					StartOffset: lineOffset,
					EndOffset:   lineOffset + len(line),
				}
				attrs, attrDiags := ParseAttrs(rawAttrs, attrSpan)

				stack = append(stack, openDirective{
					tag:         strings.ToLower(rawTag),
					rawTag:      rawTag,
					rawAttrs:    rawAttrs,
					attrs:       attrs,
					depth:       depth,
					diags:       attrDiags,
					startLine:   idx + 1,
					startOffset: lineOffset,
					bodyOffset:  min(lineOffset+len(line)+1, len(source)),
				})
			} else {
				// Nested open: tracked for fence matching only. Its text
				// stays inside the enclosing body.
				stack = append(stack, openDirective{
					tag:       strings.ToLower(rawTag),
					rawTag:    rawTag,
					depth:     depth,
					startLine: idx + 1,
				})
			}
			continue
		}

		if len(stack) == 0 && proseLine < 0 {
			proseLine = idx
			proseOffset = lineOffset
		}
	}

	spans = flushProse(spans, source, lines, proseLine, len(lines), proseOffset)

	// Force-close whatever is still open at EOF. Only the outermost
	// directive becomes a span; its body runs to end of input.
	for len(stack) > 0 {
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		diags = append(diags, unterminated(open, len(lines), len(source)))

		if len(stack) == 0 {
			body := ""
			if open.bodyOffset <= len(source) {
				body = strings.TrimSuffix(source[open.bodyOffset:], "\n")
			}
			diags = append(diags, open.diags...)
			spans = append(spans, directiveSpan(open, body, ast.SourceSpan{
				StartLine:   open.startLine,
				StartColumn: 1,
				EndLine:     len(lines),
				EndColumn:   1,
				StartOffset: open.startOffset,
				EndOffset:   len(source),
			}))
		}
	}

	return Result{Spans: spans, Diagnostics: diags, Source: source}
}

// ScanAt scans body text that starts partway into a larger file, shifting
// every span and diagnostic by the body's 1-based start line and byte
// offset. Front-matter extraction uses this so positions stay
// file-relative after the header is stripped.
func ScanAt(input string, bodyLine, bodyOffset int) Result {
	res := Scan(input)
	if bodyLine <= 1 && bodyOffset <= 0 {
		return res
	}
	deltaLines := bodyLine - 1
	for i := range res.Spans {
		res.Spans[i].Loc = shiftSpan(res.Spans[i].Loc, deltaLines, bodyOffset)
		res.Spans[i].BodyOffset += bodyOffset
	}
	for i := range res.Diagnostics {
		res.Diagnostics[i].Span = shiftSpan(res.Diagnostics[i].Span, deltaLines, bodyOffset)
	}
	return res
}

func shiftSpan(s ast.SourceSpan, lines, bytes int) ast.SourceSpan {
	s.StartLine += lines
	s.EndLine += lines
	s.StartOffset += bytes
	s.EndOffset += bytes
	return s
}

func directiveSpan(open openDirective, body string, loc ast.SourceSpan) Span {
	return Span{
		Kind:       SpanDirective,
		Tag:        open.tag,
		RawTag:     open.rawTag,
		RawAttrs:   open.rawAttrs,
		Attrs:      open.attrs,
		Body:       body,
		BodyOffset: open.bodyOffset,
		Depth:      open.depth,
		Loc:        loc,
	}
}

func unterminated(open openDirective, endLine, endOffset int) ast.Diagnostic {
	return ast.NewDiagnostic(ast.CodeUnterminatedDirective,
		ast.SourceSpan{
			StartLine:   open.startLine,
			StartColumn: 1,
			EndLine:     endLine,
			EndColumn:   1,
			StartOffset: open.startOffset,
			EndOffset:   endOffset,
		},
		"directive '::"+open.rawTag+"' is never closed")
}

// flushProse emits the accumulated prose gap ending before line endIdx,
// trimming leading and trailing blank lines so spans stay tight.
// Whitespace-only gaps are dropped.
func flushProse(spans []Span, source string, lines []string, startIdx, endIdx, startOffset int) []Span {
	if startIdx < 0 {
		return spans
	}
	lastIdx := endIdx - 1
	for startIdx < lastIdx && strings.TrimSpace(lines[startIdx]) == "" {
		startOffset += len(lines[startIdx]) + 1
		startIdx++
	}
	for lastIdx > startIdx && strings.TrimSpace(lines[lastIdx]) == "" {
		lastIdx--
	}

	endOffset := startOffset
	for i := startIdx; i <= lastIdx; i++ {
		endOffset += len(lines[i])
		if i < lastIdx {
			endOffset++ // newline
		}
	}

	content := source[startOffset:endOffset]
	if strings.TrimSpace(content) == "" {
		return spans
	}
	return append(spans, Span{
		Kind:       SpanProse,
		Body:       content,
		BodyOffset: startOffset,
		Loc: ast.SourceSpan{
			StartLine:   startIdx + 1,
			StartColumn: 1,
			EndLine:     lastIdx + 1,
			EndColumn:   len(lines[lastIdx]) + 1,
			StartOffset: startOffset,
			EndOffset:   endOffset,
		},
	})
}

// closingDepth reports whether the trimmed line is a closing fence (colons
// only, at least two) and returns its depth.
func closingDepth(trimmed string) (int, bool) {
	if len(trimmed) < 2 {
		return 0, false
	}
	for _, c := range trimmed {
		if c != ':' {
			return 0, false
		}
	}
	return len(trimmed), true
}

// openingDirective reports whether the trimmed line opens a directive and
// returns its colon depth, tag as written, and bracketed attribute text.
func openingDirective(trimmed string) (depth int, tag, rawAttrs string, ok bool) {
	for depth < len(trimmed) && trimmed[depth] == ':' {
		depth++
	}
	if depth < 2 || depth >= len(trimmed) {
		return 0, "", "", false
	}

	rest := trimmed[depth:]
	if !isTagStart(rune(rest[0])) {
		return 0, "", "", false
	}

	nameEnd := len(rest)
	for i, c := range rest {
		if !isTagChar(c) {
			nameEnd = i
			break
		}
	}
	tag = rest[:nameEnd]
	remainder := rest[nameEnd:]

	if strings.HasPrefix(remainder, "[") {
		if close := closingBracket(remainder); close >= 0 {
			rawAttrs = remainder[:close+1]
		} else {
			// Unclosed bracket: take the rest of the line and let the
			// attribute parser report it.
			rawAttrs = remainder
		}
	}
	return depth, tag, rawAttrs, true
}

// closingBracket returns the index of the bracket matching s[0], skipping
// quoted strings and nested list brackets, or -1 when the line never
// closes it.
func closingBracket(s string) int {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isTagStart(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isTagChar(c rune) bool {
	return isTagStart(c) || c >= '0' && c <= '9' || c == '-' || c == '_'
}
