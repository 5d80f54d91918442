// Package builder turns scanned spans into the typed block tree. Each
// directive tag has a fixed resolution: attributes are read best-effort
// with defaults, bodies are parsed per the tag's content policy, and
// container tags recursively build their children. Schema violations are
// never rejected here; the validator reports them against the built tree.
package builder

import (
	"strconv"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/scanner"
)

// Build converts a scan result into top-level blocks plus any diagnostics
// produced while parsing nested directive headers. Scanner diagnostics are
// not repeated here.
func Build(res scanner.Result) ([]ast.Block, []ast.Diagnostic) {
	b := &treeBuilder{}
	blocks := make([]ast.Block, 0, len(res.Spans))
	for _, sp := range res.Spans {
		blocks = append(blocks, b.fromSpan(sp))
	}
	return blocks, b.diags
}

type treeBuilder struct {
	diags []ast.Diagnostic
}

func (b *treeBuilder) fromSpan(sp scanner.Span) ast.Block {
	if sp.Kind == scanner.SpanProse {
		return &ast.Markdown{Content: sp.Body, Loc: sp.Loc}
	}
	return b.resolve(sp.Tag, sp.RawTag, sp.RawAttrs, sp.Attrs, sp.Body,
		sp.Depth, sp.Loc, sp.Loc.StartLine+1, sp.BodyOffset)
}

// resolve builds the typed block for one directive. depth is the opening
// fence's colon count; bodyLine and bodyOffset locate the first body line
// so nested children get real spans.
func (b *treeBuilder) resolve(tag, rawTag, rawAttrs string, attrs ast.Attrs, body string,
	depth int, loc ast.SourceSpan, bodyLine, bodyOffset int) ast.Block {

	id := attrs.Text("id")

	switch ast.KindForTag(tag) {
	case ast.KindCallout:
		return &ast.Callout{
			ID:      id,
			Type:    calloutType(attrs.Text("type")),
			Title:   attrs.Text("title"),
			Content: body,
			Attrs:   attrs,
			Loc:     loc,
		}

	case ast.KindData:
		format := dataFormat(attrs.Text("format"))
		var headers []string
		var rows [][]string
		switch format {
		case ast.DataTable:
			headers, rows = parsePipeTable(body)
		case ast.DataCSV:
			headers, rows = parseCSV(body)
		case ast.DataJSON:
			// JSON payloads stay raw for the renderers.
		}
		return &ast.Data{
			ID:       id,
			Format:   format,
			Sortable: attrs.Flag("sortable"),
			Headers:  headers,
			Rows:     rows,
			RawBody:  body,
			Attrs:    attrs,
			Loc:      loc,
		}

	case ast.KindCode:
		return &ast.CodeBlock{
			ID:        id,
			Lang:      attrs.Text("lang"),
			File:      attrs.Text("file"),
			Highlight: listOrCommaSplit(attrs, "highlight"),
			Content:   body,
			Attrs:     attrs,
			Loc:       loc,
		}

	case ast.KindTasks:
		return &ast.Tasks{ID: id, Items: parseTaskItems(body), Attrs: attrs, Loc: loc}

	case ast.KindDecision:
		return &ast.Decision{
			ID:       id,
			Status:   decisionStatus(attrs.Text("status")),
			Date:     attrs.Text("date"),
			Deciders: listOrCommaSplit(attrs, "deciders"),
			Content:  body,
			Attrs:    attrs,
			Loc:      loc,
		}

	case ast.KindMetric:
		return &ast.Metric{
			ID:    id,
			Label: attrs.Text("label"),
			Value: attrs.Text("value"),
			Unit:  attrs.Text("unit"),
			Trend: trend(attrs.Text("trend")),
			Attrs: attrs,
			Loc:   loc,
		}

	case ast.KindSummary:
		return &ast.Summary{ID: id, Content: body, Attrs: attrs, Loc: loc}

	case ast.KindFigure:
		return &ast.Figure{
			ID:      id,
			Src:     attrs.Text("src"),
			Caption: attrs.Text("caption"),
			Alt:     attrs.Text("alt"),
			Width:   attrs.Text("width"),
			Attrs:   attrs,
			Loc:     loc,
		}

	case ast.KindTabs:
		return &ast.Tabs{ID: id, Panels: b.parseTabPanels(body, bodyLine, bodyOffset), Attrs: attrs, Loc: loc}

	case ast.KindColumns:
		return &ast.Columns{ID: id, Cols: b.parseColumns(body, bodyLine, bodyOffset), Attrs: attrs, Loc: loc}

	case ast.KindQuote:
		return &ast.Quote{
			ID:          id,
			Content:     body,
			Attribution: attrs.TextAny("by", "attribution", "author"),
			Cite:        attrs.TextAny("cite", "source"),
			Attrs:       attrs,
			Loc:         loc,
		}

	case ast.KindCTA:
		return &ast.CTA{
			ID:      id,
			Label:   attrs.Text("label"),
			Href:    attrs.Text("href"),
			Primary: attrs.Flag("primary"),
			Icon:    attrs.Text("icon"),
			Attrs:   attrs,
			Loc:     loc,
		}

	case ast.KindHeroImage:
		return &ast.HeroImage{ID: id, Src: attrs.Text("src"), Alt: attrs.Text("alt"), Attrs: attrs, Loc: loc}

	case ast.KindTestimonial:
		return &ast.Testimonial{
			ID:      id,
			Content: body,
			Author:  attrs.TextAny("author", "name"),
			Role:    attrs.TextAny("role", "title"),
			Company: attrs.TextAny("company", "org"),
			Attrs:   attrs,
			Loc:     loc,
		}

	case ast.KindStyle:
		return &ast.Style{ID: id, Properties: parseProperties(body), Attrs: attrs, Loc: loc}

	case ast.KindFAQ:
		return &ast.FAQ{ID: id, Items: parseFAQItems(body), Attrs: attrs, Loc: loc}

	case ast.KindPricingTable:
		headers, rows := parsePipeTable(body)
		return &ast.PricingTable{ID: id, Headers: headers, Rows: rows, Attrs: attrs, Loc: loc}

	case ast.KindSite:
		children := b.buildChildren(body, bodyLine, bodyOffset)
		// Prose lines directly under the site root are site properties,
		// not page content.
		var props []ast.StyleProperty
		kept := children[:0]
		for _, c := range children {
			if md, ok := c.(*ast.Markdown); ok {
				props = append(props, parseProperties(md.Content)...)
				continue
			}
			kept = append(kept, c)
		}
		return &ast.Site{
			ID:         id,
			Domain:     attrs.Text("domain"),
			Properties: props,
			Blocks:     kept,
			Attrs:      attrs,
			Loc:        loc,
		}

	case ast.KindPage:
		return &ast.Page{
			ID:      id,
			Route:   attrs.Text("route"),
			Title:   attrs.Text("title"),
			Layout:  attrs.Text("layout"),
			Sidebar: attrs.Flag("sidebar"),
			Order:   pageOrder(attrs),
			Blocks:  b.buildChildren(body, bodyLine, bodyOffset),
			RawBody: body,
			Attrs:   attrs,
			Loc:     loc,
		}

	default:
		return &ast.Unknown{
			Tag:      rawTag,
			RawAttrs: rawAttrs,
			Attrs:    attrs,
			Body:     body,
			Depth:    depth,
			Loc:      loc,
		}
	}
}

// ------------------------------------------------------------------
// Attribute coercions
// ------------------------------------------------------------------

func calloutType(s string) ast.CalloutType {
	switch ast.CalloutType(s) {
	case ast.CalloutInfo, ast.CalloutWarning, ast.CalloutDanger,
		ast.CalloutTip, ast.CalloutNote, ast.CalloutSuccess:
		return ast.CalloutType(s)
	}
	return ast.CalloutInfo
}

func dataFormat(s string) ast.DataFormat {
	switch ast.DataFormat(s) {
	case ast.DataTable, ast.DataCSV, ast.DataJSON:
		return ast.DataFormat(s)
	}
	return ast.DataTable
}

func decisionStatus(s string) ast.DecisionStatus {
	switch ast.DecisionStatus(s) {
	case ast.DecisionProposed, ast.DecisionAccepted,
		ast.DecisionRejected, ast.DecisionSuperseded:
		return ast.DecisionStatus(s)
	}
	return ast.DecisionProposed
}

func trend(s string) ast.Trend {
	switch ast.Trend(s) {
	case ast.TrendUp, ast.TrendDown, ast.TrendFlat:
		return ast.Trend(s)
	}
	return ""
}

// pageOrder reads the explicit navigation order; nil when absent or not
// numeric.
func pageOrder(attrs ast.Attrs) *int {
	v, ok := attrs.Get("order")
	if !ok || !v.IsNumeric() {
		return nil
	}
	f := v.Num
	if v.Kind != ast.AttrNumber {
		parsed, err := strconv.ParseFloat(v.Text(), 64)
		if err != nil {
			return nil
		}
		f = parsed
	}
	n := int(f)
	return &n
}

// listOrCommaSplit reads an attribute that may be a proper list value or a
// legacy comma-separated string.
func listOrCommaSplit(attrs ast.Attrs, key string) []string {
	v, ok := attrs.Get(key)
	if !ok {
		return nil
	}
	if v.Kind == ast.AttrList {
		return v.Values
	}
	var out []string
	for _, part := range strings.Split(v.Text(), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
