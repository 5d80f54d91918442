package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// ToMarkdown degrades a document to plain CommonMark so SurfDoc sources
// stay readable in any markdown viewer. Every directive maps to the
// closest native construct; unrecognized directives are re-emitted
// verbatim so the degradation round-trips through a SurfDoc parse.
func ToMarkdown(doc *ast.Document) string {
	return markdownBlocks(doc.Blocks)
}

func markdownBlocks(blocks []ast.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if out := markdownBlock(b); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n\n")
}

func markdownBlock(b ast.Block) string {
	switch t := b.(type) {
	case *ast.Markdown:
		return strings.TrimRight(t.Content, "\n")

	case *ast.Callout:
		head := "> **" + capitalize(calloutClass(t.Type)) + "**"
		if t.Title != "" {
			head += ": " + t.Title
		}
		return head + quoteContinuation(t.Content)

	case *ast.Data:
		return pipeTable(t.Headers, t.Rows)

	case *ast.CodeBlock:
		return "```" + t.Lang + "\n" + strings.TrimRight(t.Content, "\n") + "\n```"

	case *ast.Tasks:
		lines := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			box := "[ ]"
			if item.Done {
				box = "[x]"
			}
			line := "- " + box + " " + item.Text
			if item.Assignee != "" {
				line += " @" + item.Assignee
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")

	case *ast.Decision:
		head := fmt.Sprintf("> **Decision** (%s)", t.Status)
		if t.Date != "" {
			head += " (" + t.Date + ")"
		}
		return head + quoteContinuation(t.Content)

	case *ast.Metric:
		out := "**" + t.Label + "**: " + t.Value
		if t.Unit != "" {
			out += " " + t.Unit
		}
		if arrow := trendArrow(t.Trend); arrow != "" {
			out += " " + arrow
		}
		return out

	case *ast.Summary:
		return "> *" + t.Content + "*"

	case *ast.Figure:
		out := fmt.Sprintf("![%s](%s)", t.Alt, t.Src)
		if t.Caption != "" {
			out += "\n*" + t.Caption + "*"
		}
		return out

	case *ast.Tabs:
		parts := make([]string, 0, len(t.Panels))
		for _, panel := range t.Panels {
			section := "### " + panel.Label
			if body := markdownBlocks(panel.Blocks); body != "" {
				section += "\n\n" + body
			}
			parts = append(parts, section)
		}
		return strings.Join(parts, "\n\n")

	case *ast.Columns:
		parts := make([]string, 0, len(t.Cols))
		for _, col := range t.Cols {
			parts = append(parts, markdownBlocks(col.Blocks))
		}
		return strings.Join(parts, "\n\n---\n\n")

	case *ast.Quote:
		out := quoteLines(t.Content)
		if t.Attribution != "" {
			out += "\n>\n> — " + t.Attribution
		}
		return out

	case *ast.CTA:
		return fmt.Sprintf("[%s](%s)", t.Label, t.Href)

	case *ast.HeroImage:
		return fmt.Sprintf("![%s](%s)", t.Alt, t.Src)

	case *ast.Testimonial:
		out := quoteLines(t.Content)
		if who := joinNonEmpty(", ", t.Author, t.Role, t.Company); who != "" {
			out += "\n>\n> — " + who
		}
		return out

	case *ast.Style:
		// Presentation only; nothing to degrade to.
		return ""

	case *ast.FAQ:
		parts := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			parts = append(parts, "### "+item.Question+"\n\n"+item.Answer)
		}
		return strings.Join(parts, "\n\n")

	case *ast.PricingTable:
		return pipeTable(t.Headers, t.Rows)

	case *ast.Site:
		var lines []string
		lines = append(lines, "**Site Configuration**", "")
		if t.Domain != "" {
			lines = append(lines, "- domain: "+t.Domain)
		}
		for _, p := range t.Properties {
			lines = append(lines, "- "+p.Key+": "+p.Value)
		}
		out := strings.Join(lines, "\n")
		if body := markdownBlocks(t.Blocks); body != "" {
			out += "\n\n" + body
		}
		return out

	case *ast.Page:
		title := t.Title
		if title == "" {
			title = t.Route
		}
		out := "## " + title
		if body := markdownBlocks(t.Blocks); body != "" {
			out += "\n\n" + body
		}
		return out

	case *ast.Unknown:
		// Re-emit the original directive untouched so parsing the
		// degraded output recovers the same block.
		// RawAttrs keeps its brackets, so the header reassembles as written.
		fence := strings.Repeat(":", max(t.Depth, 2))
		open := fence + t.Tag + t.RawAttrs
		if t.Body == "" {
			return open + "\n" + fence
		}
		return open + "\n" + t.Body + "\n" + fence

	default:
		return ""
	}
}

// quoteContinuation renders content as blockquote lines following an
// already-emitted quote heading.
func quoteContinuation(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return "\n>\n" + quoteLines(content)
}

func quoteLines(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}

func pipeTable(headers []string, rows [][]string) string {
	var lines []string
	if len(headers) > 0 {
		lines = append(lines, "| "+strings.Join(headers, " | ")+" |")
		seps := make([]string, len(headers))
		for i := range seps {
			seps[i] = "---"
		}
		lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
	}
	for _, row := range rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

func trendArrow(t ast.Trend) string {
	switch t {
	case ast.TrendUp:
		return "↑"
	case ast.TrendDown:
		return "↓"
	case ast.TrendFlat:
		return "→"
	}
	return ""
}
