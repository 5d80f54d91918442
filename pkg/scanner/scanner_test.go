package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

func TestScanEmptyInput(t *testing.T) {
	res := Scan("")
	assert.Empty(t, res.Spans)
	assert.Empty(t, res.Diagnostics)
}

func TestScanPlainMarkdown(t *testing.T) {
	res := Scan("# Hello\n\nSome text here.\n")
	require.Len(t, res.Spans, 1)
	require.Empty(t, res.Diagnostics)

	sp := res.Spans[0]
	assert.Equal(t, SpanProse, sp.Kind)
	assert.Contains(t, sp.Body, "# Hello")
	assert.Contains(t, sp.Body, "Some text here.")
	assert.Equal(t, 1, sp.Loc.StartLine)
	assert.Equal(t, 3, sp.Loc.EndLine)
}

func TestScanSingleDirective(t *testing.T) {
	res := Scan("::callout[type=warning]\nDanger!\n::\n")
	require.Len(t, res.Spans, 1)
	require.Empty(t, res.Diagnostics)

	sp := res.Spans[0]
	assert.Equal(t, SpanDirective, sp.Kind)
	assert.Equal(t, "callout", sp.Tag)
	assert.Equal(t, "Danger!", sp.Body)
	assert.Equal(t, ast.SymbolValue("warning"), sp.Attrs["type"])
	assert.Equal(t, 1, sp.Loc.StartLine)
	assert.Equal(t, 3, sp.Loc.EndLine)
}

func TestScanAlternatingSpans(t *testing.T) {
	input := "::callout[type=info]\nFirst\n::\n\nSome markdown.\n\n::data[format=json]\n{}\n::\n"
	res := Scan(input)
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 3)

	assert.Equal(t, SpanDirective, res.Spans[0].Kind)
	assert.Equal(t, "callout", res.Spans[0].Tag)
	assert.Equal(t, SpanProse, res.Spans[1].Kind)
	assert.Equal(t, "Some markdown.", res.Spans[1].Body)
	assert.Equal(t, SpanDirective, res.Spans[2].Kind)
	assert.Equal(t, "data", res.Spans[2].Tag)
}

func TestScanTagCaseFolding(t *testing.T) {
	res := Scan("::CallOut[type=tip]\nBody\n::\n")
	require.Len(t, res.Spans, 1)
	assert.Equal(t, "callout", res.Spans[0].Tag)
	assert.Equal(t, "CallOut", res.Spans[0].RawTag)
}

func TestScanNestedDirectivesStayInBody(t *testing.T) {
	input := "::columns\n:::column\nLeft text.\n:::\n:::column\nRight text.\n:::\n::\n"
	res := Scan(input)
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)

	sp := res.Spans[0]
	assert.Equal(t, "columns", sp.Tag)
	assert.Contains(t, sp.Body, ":::column")
	assert.Contains(t, sp.Body, "Left text.")
	assert.Contains(t, sp.Body, "Right text.")
}

func TestScanSameDepthNesting(t *testing.T) {
	// Site and page fences at the same colon depth: the closer matches the
	// innermost open directive.
	input := "::site\n::page[route=/]\nHome\n::\n::\n"
	res := Scan(input)
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)

	sp := res.Spans[0]
	assert.Equal(t, "site", sp.Tag)
	assert.Contains(t, sp.Body, "::page[route=/]")
	assert.Contains(t, sp.Body, "Home")
}

func TestScanUnterminatedDirective(t *testing.T) {
	res := Scan("::callout[type=tip]\nX\n")
	require.Len(t, res.Spans, 1)
	require.Len(t, res.Diagnostics, 1)

	d := res.Diagnostics[0]
	assert.Equal(t, ast.CodeUnterminatedDirective, d.Code)
	assert.Equal(t, ast.SeverityError, d.Severity)
	assert.Equal(t, 1, d.Span.StartLine)

	// The rest of the file becomes the directive body.
	sp := res.Spans[0]
	assert.Equal(t, "callout", sp.Tag)
	assert.Equal(t, "X", sp.Body)
}

func TestScanUnterminatedNestedDirective(t *testing.T) {
	input := "::tabs\n:::tab\nStuff\n::\nAfter.\n"
	res := Scan(input)

	// The outer `::` fence closes tabs; the deeper tab fence never appears.
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, ast.CodeUnterminatedDirective, res.Diagnostics[0].Code)

	require.Len(t, res.Spans, 2)
	assert.Equal(t, "tabs", res.Spans[0].Tag)
	assert.Equal(t, SpanProse, res.Spans[1].Kind)
}

func TestScanStrayFenceIsProse(t *testing.T) {
	res := Scan("Hello\n::\nWorld\n")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)
	assert.Equal(t, SpanProse, res.Spans[0].Kind)
	assert.Contains(t, res.Spans[0].Body, "::")
}

func TestScanCRLFNormalization(t *testing.T) {
	res := Scan("::quote\r\nWords.\r\n::\r\n")
	require.Len(t, res.Spans, 1)
	assert.Equal(t, "quote", res.Spans[0].Tag)
	assert.Equal(t, "Words.", res.Spans[0].Body)
}

func TestScanSpanOffsets(t *testing.T) {
	input := "# Title\n::callout\nInside\n::\n# After\n"
	res := Scan(input)
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 3)

	md := res.Spans[0]
	assert.Equal(t, 1, md.Loc.StartLine)
	assert.Equal(t, 1, md.Loc.EndLine)
	assert.Equal(t, "# Title", res.Source[md.Loc.StartOffset:md.Loc.EndOffset])

	dir := res.Spans[1]
	assert.Equal(t, 2, dir.Loc.StartLine)
	assert.Equal(t, 4, dir.Loc.EndLine)

	after := res.Spans[2]
	assert.Equal(t, 5, after.Loc.StartLine)
	assert.Equal(t, "# After", res.Source[after.Loc.StartOffset:after.Loc.EndOffset])
}

func TestScanUnknownTagStructurally(t *testing.T) {
	res := Scan("::widget[mode=full]\ncontent\n::\n")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)

	sp := res.Spans[0]
	assert.Equal(t, "widget", sp.Tag)
	assert.Equal(t, "[mode=full]", sp.RawAttrs)
	assert.Equal(t, "content", sp.Body)
}

func TestScanBracketedListAttribute(t *testing.T) {
	res := Scan("::code[lang=go highlight=[\"3\",\"7-9\"]]\nfunc main() {}\n::\n")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)

	sp := res.Spans[0]
	assert.Equal(t, `[lang=go highlight=["3","7-9"]]`, sp.RawAttrs)
	assert.Equal(t, ast.ListValue("3", "7-9"), sp.Attrs["highlight"])
}

func TestScanBracketInsideQuotedValue(t *testing.T) {
	res := Scan("::callout[type=info title=\"a ] b\"]\nBody\n::\n")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)
	assert.Equal(t, ast.StringValue("a ] b"), res.Spans[0].Attrs["title"])
}

func TestScanProseAfterDirectiveDropsLeadingBlanks(t *testing.T) {
	res := Scan("::callout[type=info]\nFirst\n::\n\nSome markdown.\n")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 2)

	prose := res.Spans[1]
	assert.Equal(t, "Some markdown.", prose.Body)
	assert.Equal(t, 5, prose.Loc.StartLine)
	assert.Equal(t, "Some markdown.", res.Source[prose.Loc.StartOffset:prose.Loc.EndOffset])
}

func TestScanAtShiftsSpansAndDiagnostics(t *testing.T) {
	// Body text that starts on line 4 of a file with a three-line header.
	header := "---\ntitle: X\n---\n"
	res := ScanAt("::callout[type=tip]\nX\n", 4, len(header))

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 4, res.Diagnostics[0].Span.StartLine)

	require.Len(t, res.Spans, 1)
	assert.Equal(t, 4, res.Spans[0].Loc.StartLine)
	assert.Equal(t, len(header), res.Spans[0].Loc.StartOffset)
	assert.Equal(t, len(header)+len("::callout[type=tip]\n"), res.Spans[0].BodyOffset)
}

func TestScanDirectiveWithoutBody(t *testing.T) {
	res := Scan("::metric[label=\"MRR\" value=2400]\n::\n")
	require.Empty(t, res.Diagnostics)
	require.Len(t, res.Spans, 1)
	assert.Equal(t, "", res.Spans[0].Body)
}
