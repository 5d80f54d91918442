package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
	"github.com/yaklabco/surfdoc/pkg/langdetect"
	"github.com/yaklabco/surfdoc/pkg/prose"
)

// HTML renders documents to semantic HTML with surfdoc-* CSS classes.
// Prose spans go through goldmark; everything else is escaped.
type HTML struct {
	prose *prose.Engine
}

// NewHTML creates an HTML renderer using the given markdown flavor for
// prose spans.
func NewHTML(flavor string) *HTML {
	return &HTML{prose: prose.New(flavor)}
}

// Fragment renders the document body as a sequence of HTML elements with
// no page wrapper. Style overrides from ::site and ::style blocks are
// emitted first as CSS variable assignments.
func (r *HTML) Fragment(doc *ast.Document) string {
	var parts []string

	if overrides := styleOverrides(doc.Blocks); overrides != "" {
		parts = append(parts, "<style>:root { "+overrides+" }</style>")
	}
	for _, b := range doc.Blocks {
		parts = append(parts, r.Block(b))
	}
	return strings.Join(parts, "\n")
}

// Page renders a complete standalone HTML document: head metadata, the
// embedded stylesheet, and the fragment body.
func (r *HTML) Page(doc *ast.Document, meta PageMeta) string {
	body := r.Fragment(doc)

	lang := meta.Lang
	if lang == "" {
		lang = "en"
	}
	title := meta.Title
	if title == "" {
		title = doc.FrontMatter["title"]
	}
	if title == "" {
		title = "SurfDoc"
	}
	sourcePath := meta.SourcePath
	if sourcePath == "" {
		sourcePath = "source.surf"
	}

	var metaExtra strings.Builder
	if meta.Description != "" {
		fmt.Fprintf(&metaExtra, "\n    <meta name=\"description\" content=\"%s\">", escape(meta.Description))
	}
	if meta.CanonicalURL != "" {
		fmt.Fprintf(&metaExtra, "\n    <link rel=\"canonical\" href=\"%s\">", escape(meta.CanonicalURL))
	}

	return fmt.Sprintf(`<!-- Built with SurfDoc — source: %s -->
<!DOCTYPE html>
<html lang="%s">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <meta name="generator" content="surfdoc">
    <link rel="alternate" type="text/surfdoc" href="%s">
    <title>%s</title>%s
    <style>%s</style>
</head>
<body>
<article class="surfdoc">
%s
</article>
</body>
</html>`,
		escape(sourcePath), escape(lang), escape(sourcePath),
		escape(title), metaExtra.String(), Stylesheet, body)
}

// Block renders a single block. Exhaustive over the closed block set.
func (r *HTML) Block(b ast.Block) string {
	switch t := b.(type) {
	case *ast.Markdown:
		out, err := r.prose.HTML(t.Content)
		if err != nil {
			// Never drop content: fall back to an escaped paragraph.
			return "<p>" + escape(t.Content) + "</p>"
		}
		return strings.TrimRight(out, "\n")

	case *ast.Callout:
		kind := calloutClass(t.Type)
		role := "note"
		if kind == "danger" {
			role = "alert"
		}
		heading := capitalize(kind)
		if t.Title != "" {
			heading += ": " + escape(t.Title)
		}
		return fmt.Sprintf(
			`<div class="surfdoc-callout surfdoc-callout-%s"%s role=%q><strong>%s</strong><p>%s</p></div>`,
			kind, anchor(t), role, heading, escape(t.Content))

	case *ast.Data:
		return tableHTML("surfdoc-data", anchor(t), "", t.Headers, t.Rows)

	case *ast.CodeBlock:
		lang := t.Lang
		if lang == "" {
			lang = langdetect.Detect([]byte(t.Content))
			if lang == langdetect.Fallback {
				lang = ""
			}
		}
		class, aria := "", ""
		if lang != "" {
			class = fmt.Sprintf(" class=\"language-%s\"", escape(lang))
			aria = fmt.Sprintf(" aria-label=\"%s code\"", escape(lang))
		}
		return fmt.Sprintf("<pre class=\"surfdoc-code\"%s%s><code%s>%s</code></pre>",
			anchor(t), aria, class, escape(t.Content))

	case *ast.Tasks:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<ul class=\"surfdoc-tasks\"%s>", anchor(t))
		for _, item := range t.Items {
			checked := ""
			if item.Done {
				checked = " checked"
			}
			assignee := ""
			if item.Assignee != "" {
				assignee = fmt.Sprintf(" <span class=\"assignee\">@%s</span>", escape(item.Assignee))
			}
			fmt.Fprintf(&sb, "<li><label><input type=\"checkbox\"%s disabled> %s</label>%s</li>",
				checked, escape(item.Text), assignee)
		}
		sb.WriteString("</ul>")
		return sb.String()

	case *ast.Decision:
		status := string(t.Status)
		date := ""
		if t.Date != "" {
			date = fmt.Sprintf("<span class=\"date\">%s</span>", escape(t.Date))
		}
		return fmt.Sprintf(
			`<div class="surfdoc-decision surfdoc-decision-%s"%s role="note" aria-label="Decision: %s"><span class="status">%s</span>%s<p>%s</p></div>`,
			status, anchor(t), status, status, date, escape(t.Content))

	case *ast.Metric:
		trendHTML, trendText := metricTrend(t.Trend)
		unit := ""
		if t.Unit != "" {
			unit = fmt.Sprintf("<span class=\"unit\">%s</span>", escape(t.Unit))
		}
		label := t.Label + ": " + t.Value
		if t.Unit != "" {
			label += " " + t.Unit
		}
		return fmt.Sprintf(
			`<div class="surfdoc-metric"%s role="group" aria-label="%s"><span class="label">%s</span><span class="value">%s</span>%s%s</div>`,
			anchor(t), escape(label+trendText), escape(t.Label), escape(t.Value), unit, trendHTML)

	case *ast.Summary:
		return fmt.Sprintf(`<div class="surfdoc-summary"%s role="doc-abstract"><p>%s</p></div>`,
			anchor(t), escape(t.Content))

	case *ast.Figure:
		caption := ""
		if t.Caption != "" {
			caption = fmt.Sprintf("<figcaption>%s</figcaption>", escape(t.Caption))
		}
		return fmt.Sprintf(`<figure class="surfdoc-figure"%s><img src="%s" alt="%s" />%s</figure>`,
			anchor(t), escape(t.Src), escape(t.Alt), caption)

	case *ast.Tabs:
		return r.tabsHTML(t)

	case *ast.Columns:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"surfdoc-columns\"%s role=\"group\" data-cols=\"%d\">", anchor(t), len(t.Cols))
		for _, col := range t.Cols {
			sb.WriteString("<div class=\"surfdoc-column\">")
			sb.WriteString(r.blocks(col.Blocks))
			sb.WriteString("</div>")
		}
		sb.WriteString("</div>")
		return sb.String()

	case *ast.Quote:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"surfdoc-quote\"%s><blockquote>%s</blockquote>", anchor(t), escape(t.Content))
		if t.Attribution != "" {
			cite := ""
			if t.Cite != "" {
				cite = fmt.Sprintf(", <cite>%s</cite>", escape(t.Cite))
			}
			fmt.Fprintf(&sb, "<div class=\"attribution\">%s%s</div>", escape(t.Attribution), cite)
		}
		sb.WriteString("</div>")
		return sb.String()

	case *ast.CTA:
		class := "surfdoc-cta surfdoc-cta-secondary"
		if t.Primary {
			class = "surfdoc-cta surfdoc-cta-primary"
		}
		return fmt.Sprintf(`<a class="%s"%s href="%s">%s</a>`,
			class, anchor(t), escape(t.Href), escape(t.Label))

	case *ast.HeroImage:
		role := ""
		if t.Alt != "" {
			role = fmt.Sprintf(" role=\"img\" aria-label=\"%s\"", escape(t.Alt))
		}
		return fmt.Sprintf(`<div class="surfdoc-hero-image"%s%s><img src="%s" alt="%s" /></div>`,
			anchor(t), role, escape(t.Src), escape(t.Alt))

	case *ast.Testimonial:
		aria := ` aria-label="Testimonial"`
		if t.Author != "" {
			aria = fmt.Sprintf(" aria-label=\"Testimonial from %s\"", escape(t.Author))
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"surfdoc-testimonial\"%s role=\"figure\"%s><blockquote>%s</blockquote>",
			anchor(t), aria, escape(t.Content))
		if t.Author != "" || t.Role != "" || t.Company != "" {
			sb.WriteString("<div class=\"author\">")
			sb.WriteString(escape(t.Author))
			details := joinNonEmpty(", ", t.Role, t.Company)
			if details != "" {
				fmt.Fprintf(&sb, " <span class=\"role\">%s</span>", escape(details))
			}
			sb.WriteString("</div>")
		}
		sb.WriteString("</div>")
		return sb.String()

	case *ast.Style:
		return fmt.Sprintf(`<div class="surfdoc-style" aria-hidden="true" data-properties="%s"></div>`,
			escape(propertyPairs(t.Properties)))

	case *ast.FAQ:
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"surfdoc-faq\"%s>", anchor(t))
		for _, item := range t.Items {
			fmt.Fprintf(&sb, "<details><summary>%s</summary><div class=\"faq-answer\">%s</div></details>",
				escape(item.Question), escape(item.Answer))
		}
		sb.WriteString("</div>")
		return sb.String()

	case *ast.PricingTable:
		return tableHTML("surfdoc-pricing", anchor(t), ` aria-label="Pricing comparison"`, t.Headers, t.Rows)

	case *ast.Site:
		domain := ""
		if t.Domain != "" {
			domain = fmt.Sprintf(" data-domain=\"%s\"", escape(t.Domain))
		}
		meta := fmt.Sprintf(`<div class="surfdoc-site" aria-hidden="true"%s data-properties="%s"></div>`,
			domain, escape(propertyPairs(t.Properties)))
		if len(t.Blocks) == 0 {
			return meta
		}
		return meta + "\n" + r.blocks(t.Blocks)

	case *ast.Page:
		layout := ""
		if t.Layout != "" {
			layout = fmt.Sprintf(" data-layout=\"%s\"", escape(t.Layout))
		}
		aria := fmt.Sprintf(" aria-label=\"Page: %s\"", escape(t.Route))
		if t.Title != "" {
			aria = fmt.Sprintf(" aria-label=\"%s\"", escape(t.Title))
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "<section class=\"surfdoc-page\"%s%s%s>", anchor(t), layout, aria)
		sb.WriteString(r.blocks(t.Blocks))
		sb.WriteString("</section>")
		return sb.String()

	case *ast.Unknown:
		return fmt.Sprintf(`<div class="surfdoc-unknown" role="note" data-name="%s">%s</div>`,
			escape(t.Tag), escape(t.Body))

	default:
		// The block set is closed; reaching this means a new kind was
		// added without renderer support.
		return fmt.Sprintf("<!-- unsupported block kind %s -->", b.Kind())
	}
}

func (r *HTML) blocks(blocks []ast.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, r.Block(b))
	}
	return strings.Join(parts, "\n")
}

func (r *HTML) tabsHTML(t *ast.Tabs) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<div class=\"surfdoc-tabs\"%s>", anchor(t))
	sb.WriteString("<nav role=\"tablist\">")
	for i, panel := range t.Panels {
		active, selected, tabindex := "", "false", "-1"
		if i == 0 {
			active, selected, tabindex = " active", "true", "0"
		}
		fmt.Fprintf(&sb,
			`<button class="tab-btn%s" role="tab" aria-selected="%s" aria-controls="surfdoc-panel-%d" id="surfdoc-tab-%d" tabindex="%s">%s</button>`,
			active, selected, i, i, tabindex, escape(panel.Label))
	}
	sb.WriteString("</nav>")
	for i, panel := range t.Panels {
		active, hidden := "", " hidden"
		if i == 0 {
			active, hidden = " active", ""
		}
		fmt.Fprintf(&sb,
			`<div class="tab-panel%s" role="tabpanel" id="surfdoc-panel-%d" aria-labelledby="surfdoc-tab-%d" tabindex="0"%s>%s</div>`,
			active, i, i, hidden, r.blocks(panel.Blocks))
	}
	sb.WriteString("</div>")
	return sb.String()
}

func tableHTML(class, anchorAttr, extraAttrs string, headers []string, rows [][]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<table class=%q%s%s>", class, anchorAttr, extraAttrs)
	if len(headers) > 0 {
		sb.WriteString("<thead><tr>")
		for _, h := range headers {
			fmt.Fprintf(&sb, "<th scope=\"col\">%s</th>", escape(h))
		}
		sb.WriteString("</tr></thead>")
	}
	sb.WriteString("<tbody>")
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&sb, "<td>%s</td>", escape(cell))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

// styleOverrides collects CSS variable assignments from site and style
// blocks. Only the accent color is supported as an override today.
func styleOverrides(blocks []ast.Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		var props []ast.StyleProperty
		switch t := b.(type) {
		case *ast.Site:
			props = t.Properties
		case *ast.Style:
			props = t.Properties
		default:
			continue
		}
		for _, p := range props {
			if p.Key == "accent" {
				fmt.Fprintf(&sb, "--accent: %s;", escape(p.Value))
			}
		}
	}
	return sb.String()
}

func propertyPairs(props []ast.StyleProperty) string {
	pairs := make([]string, 0, len(props))
	for _, p := range props {
		pairs = append(pairs, p.Key+"="+p.Value)
	}
	return strings.Join(pairs, ";")
}

func metricTrend(t ast.Trend) (html, aria string) {
	switch t {
	case ast.TrendUp:
		return `<span class="trend up">↑</span>`, ", trending up"
	case ast.TrendDown:
		return `<span class="trend down">↓</span>`, ", trending down"
	case ast.TrendFlat:
		return `<span class="trend flat">→</span>`, ", flat"
	}
	return "", ""
}

// calloutClass returns the CSS class suffix for a callout type, folding
// anything unrecognized to info so rendering stays total.
func calloutClass(t ast.CalloutType) string {
	switch t {
	case ast.CalloutInfo, ast.CalloutWarning, ast.CalloutDanger,
		ast.CalloutTip, ast.CalloutNote, ast.CalloutSuccess:
		return string(t)
	}
	return string(ast.CalloutInfo)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
