package builder

import (
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/scanner"
)

// srcLines indexes a container body by line so nested children can carry
// real source spans. baseLine/baseOffset locate the body's first line in
// the original document.
type srcLines struct {
	lines   []string
	offsets []int // byte offset of each line start, relative to the body
}

func splitLines(body string) srcLines {
	lines := strings.Split(body, "\n")
	offsets := make([]int, len(lines))
	o := 0
	for i, l := range lines {
		offsets[i] = o
		o += len(l) + 1
	}
	return srcLines{lines: lines, offsets: offsets}
}

func (s srcLines) span(baseLine, baseOffset, startIdx, endIdx int) ast.SourceSpan {
	return ast.SourceSpan{
		StartLine:   baseLine + startIdx,
		StartColumn: 1,
		EndLine:     baseLine + endIdx,
		EndColumn:   len(s.lines[endIdx]) + 1,
		StartOffset: baseOffset + s.offsets[startIdx],
		EndOffset:   baseOffset + s.offsets[endIdx] + len(s.lines[endIdx]),
	}
}

// buildChildren re-scans a container body for nested directives,
// interleaving them with markdown runs. Directives with a matching closing
// fence become containers; a lone `::tag[attrs]` line with no closer is a
// leaf directive with an empty body. Stray closing fences are dropped.
func (b *treeBuilder) buildChildren(body string, baseLine, baseOffset int) []ast.Block {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	src := splitLines(body)

	var children []ast.Block
	var mdLines []string
	mdFirst, mdLast := -1, -1

	flushMD := func() {
		if mdFirst >= 0 {
			children = appendMarkdown(children, mdLines,
				src.span(baseLine, baseOffset, mdFirst, mdLast))
		}
		mdLines = mdLines[:0]
		mdFirst, mdLast = -1, -1
	}

	i := 0
	for i < len(src.lines) {
		line := src.lines[i]

		if depth, tag, rawAttrs, ok := scanner.OpeningDirective(line); ok {
			headerSpan := src.span(baseLine, baseOffset, i, i)

			if content, endIdx, found := scanContainerClose(src.lines, i+1, depth); found {
				flushMD()
				attrs, diags := scanner.ParseAttrs(rawAttrs, headerSpan)
				b.diags = append(b.diags, diags...)
				children = append(children, b.resolve(
					strings.ToLower(tag), tag, rawAttrs, attrs, content,
					depth, src.span(baseLine, baseOffset, i, endIdx),
					baseLine+i+1, baseOffset+src.offsets[i]+len(line)+1))
				i = endIdx + 1
				continue
			}

			if depth == 2 {
				// No closer before a sibling or EOF: a body-less leaf.
				flushMD()
				attrs, diags := scanner.ParseAttrs(rawAttrs, headerSpan)
				b.diags = append(b.diags, diags...)
				children = append(children, b.resolve(
					strings.ToLower(tag), tag, rawAttrs, attrs, "",
					depth, headerSpan, baseLine+i+1, baseOffset+src.offsets[i]+len(line)+1))
				i++
				continue
			}
			// A deeper opener with no closer reads as plain text.
		}

		if _, ok := scanner.ClosingFence(line); ok {
			// Orphan closer; keep it out of the markdown.
			i++
			continue
		}

		if mdFirst < 0 {
			mdFirst = i
		}
		mdLast = i
		mdLines = append(mdLines, line)
		i++
	}
	flushMD()

	return children
}

func appendMarkdown(children []ast.Block, lines []string, loc ast.SourceSpan) []ast.Block {
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return children
	}
	return append(children, &ast.Markdown{Content: text, Loc: loc})
}

// scanContainerClose looks for the fence closing a directive opened at
// openDepth, starting at line start. Intervening openers at or above that
// depth bump a nesting count their own closers unwind, so a page can hold
// fenced same-depth children. Running out of lines means the original
// directive has no closer and is a body-less leaf.
func scanContainerClose(lines []string, start, openDepth int) (content string, endIdx int, found bool) {
	nesting := 0
	var collected []string

	for i := start; i < len(lines); i++ {
		line := lines[i]

		if closeDepth, ok := scanner.ClosingFence(line); ok {
			if closeDepth == openDepth && nesting == 0 {
				return strings.Join(collected, "\n"), i, true
			}
			if nesting > 0 {
				nesting--
			}
			collected = append(collected, line)
			continue
		}

		if nestedDepth, _, _, ok := scanner.OpeningDirective(line); ok && nestedDepth >= openDepth {
			nesting++
		}

		collected = append(collected, line)
	}
	return "", 0, false
}

// parseTabPanels splits a tabs body on `##`/`###` headings; each heading
// labels one panel whose content is built recursively. A body with no
// headings becomes a single unnamed panel.
func (b *treeBuilder) parseTabPanels(body string, baseLine, baseOffset int) []ast.TabPanel {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	src := splitLines(body)

	var panels []ast.TabPanel
	label := ""
	haveLabel := false
	segStart := 0

	flush := func(end int) {
		if !haveLabel {
			return
		}
		panels = append(panels, ast.TabPanel{
			Label:  label,
			Blocks: b.segmentBlocks(src, segStart, end, baseLine, baseOffset),
		})
	}

	for i, line := range src.lines {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, "## ")
		if !ok {
			rest, ok = strings.CutPrefix(trimmed, "### ")
		}
		if ok {
			flush(i)
			label = strings.TrimSpace(rest)
			haveLabel = true
			segStart = i + 1
		}
	}
	flush(len(src.lines))

	if len(panels) == 0 {
		blocks := b.buildChildren(body, baseLine, baseOffset)
		if len(blocks) == 0 {
			return nil
		}
		panels = append(panels, ast.TabPanel{Label: "Tab 1", Blocks: blocks})
	}
	return panels
}

// parseColumns splits a columns body into column segments. Separators are
// nested `:::column` / `:::` fences or, when those are absent, a `---`
// rule. A body with no separators is a single column.
func (b *treeBuilder) parseColumns(body string, baseLine, baseOffset int) []ast.Column {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	src := splitLines(body)

	var cols []ast.Column
	segStart := 0
	foundSeparator := false

	flush := func(end int) {
		blocks := b.segmentBlocks(src, segStart, end, baseLine, baseOffset)
		if len(blocks) > 0 {
			cols = append(cols, ast.Column{Blocks: blocks})
		}
	}

	for i, line := range src.lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, ":::column"):
			flush(i)
			segStart = i + 1
			foundSeparator = true
		case trimmed == ":::":
			if foundSeparator {
				flush(i)
				segStart = i + 1
			}
		case trimmed == "---" && !foundSeparator:
			flush(i)
			segStart = i + 1
			foundSeparator = true
		}
	}
	flush(len(src.lines))

	if len(cols) == 0 {
		if blocks := b.buildChildren(body, baseLine, baseOffset); len(blocks) > 0 {
			cols = append(cols, ast.Column{Blocks: blocks})
		}
	}
	return cols
}

// segmentBlocks builds child blocks for the line range [start, end) of an
// already split body.
func (b *treeBuilder) segmentBlocks(src srcLines, start, end, baseLine, baseOffset int) []ast.Block {
	if start >= end {
		return nil
	}
	segment := strings.Join(src.lines[start:end], "\n")
	return b.buildChildren(segment, baseLine+start, baseOffset+src.offsets[start])
}
