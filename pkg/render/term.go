package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/surfdoc/pkg/ast"
)

// Term renders documents for terminal display. With color enabled it uses
// ANSI 256 styling through lipgloss; without, every style degrades to
// plain text so output stays pipe-safe.
type Term struct {
	styles *termStyles
}

// NewTerm creates a terminal renderer.
func NewTerm(colorEnabled bool) *Term {
	return &Term{styles: newTermStyles(colorEnabled)}
}

// Render renders the full document, blocks separated by blank lines.
func (r *Term) Render(doc *ast.Document) string {
	return r.blocks(doc.Blocks)
}

func (r *Term) blocks(blocks []ast.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if out := r.Block(b); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Block renders one block. Total over the closed block set.
func (r *Term) Block(b ast.Block) string {
	s := r.styles
	switch t := b.(type) {
	case *ast.Markdown:
		return strings.TrimRight(t.Content, "\n")

	case *ast.Callout:
		kind := calloutClass(t.Type)
		bar := s.calloutBar(kind)
		head := s.Bold.Render(strings.ToUpper(kind))
		if t.Title != "" {
			head += " " + t.Title
		}
		return r.barred(bar, head, t.Content)

	case *ast.Data:
		return r.boxTable(t.Headers, t.Rows)

	case *ast.CodeBlock:
		header := "```"
		if t.Lang != "" {
			header = s.Dim.Render("``` " + t.Lang)
		}
		return header + "\n" + t.Content + "\n" + s.Dim.Render("```")

	case *ast.Tasks:
		lines := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			var line string
			if item.Done {
				line = s.Success.Render("✓") + " " + s.Strike.Render(item.Text)
			} else {
				line = "☐ " + item.Text
			}
			if item.Assignee != "" {
				line += " " + s.Dim.Render("@"+item.Assignee)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")

	case *ast.Decision:
		badge := r.statusBadge(t.Status)
		head := badge + " " + s.Bold.Render("Decision")
		if t.Date != "" {
			head += " " + s.Dim.Render(t.Date)
		}
		if len(t.Deciders) > 0 {
			head += " " + s.Dim.Render("("+strings.Join(t.Deciders, ", ")+")")
		}
		return r.barred(s.Border, head, t.Content)

	case *ast.Metric:
		out := s.Dim.Render(t.Label+":") + " " + s.Bold.Render(t.Value)
		if t.Unit != "" {
			out += " " + t.Unit
		}
		switch t.Trend {
		case ast.TrendUp:
			out += " " + s.Success.Render("↑")
		case ast.TrendDown:
			out += " " + s.Danger.Render("↓")
		case ast.TrendFlat:
			out += " " + s.Dim.Render("→")
		}
		return out

	case *ast.Summary:
		return r.barred(s.Accent, s.Bold.Render("Summary"), t.Content)

	case *ast.Figure:
		label := "[Figure]"
		if t.Caption != "" {
			label = "[Figure: " + t.Caption + "]"
		}
		return s.Dim.Render(label + " (" + t.Src + ")")

	case *ast.Tabs:
		parts := make([]string, 0, len(t.Panels))
		for i, panel := range t.Panels {
			head := s.Accent.Render(fmt.Sprintf("[Tab %d]", i+1)) + " " + s.Bold.Render(panel.Label)
			if body := r.blocks(panel.Blocks); body != "" {
				head += "\n" + body
			}
			parts = append(parts, head)
		}
		return strings.Join(parts, "\n\n")

	case *ast.Columns:
		parts := make([]string, 0, len(t.Cols))
		for i, col := range t.Cols {
			head := s.Dim.Render(fmt.Sprintf("[Col %d]", i+1))
			if body := r.blocks(col.Blocks); body != "" {
				head += "\n" + body
			}
			parts = append(parts, head)
		}
		return strings.Join(parts, "\n\n")

	case *ast.Quote:
		body := t.Content
		if t.Attribution != "" {
			body += "\n— " + t.Attribution
		}
		return r.barred(s.Border, "", body)

	case *ast.CTA:
		return s.Accent.Render("[CTA]") + " " + s.Bold.Render(t.Label) + " " + s.Dim.Render("("+t.Href+")")

	case *ast.HeroImage:
		return s.Dim.Render("[Hero: " + t.Alt + "] (" + t.Src + ")")

	case *ast.Testimonial:
		body := t.Content
		if who := joinNonEmpty(", ", t.Author, t.Role, t.Company); who != "" {
			body += "\n— " + who
		}
		return r.barred(s.Border, "", body)

	case *ast.Style:
		return ""

	case *ast.FAQ:
		parts := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			parts = append(parts, s.Bold.Render("Q: "+item.Question)+"\n"+"A: "+item.Answer)
		}
		return strings.Join(parts, "\n\n")

	case *ast.PricingTable:
		return s.Dim.Render("[Pricing]") + "\n" + r.boxTable(t.Headers, t.Rows)

	case *ast.Site:
		var lines []string
		lines = append(lines, s.Bold.Render("[Site Config]"))
		if t.Domain != "" {
			lines = append(lines, "  domain: "+t.Domain)
		}
		for _, p := range t.Properties {
			lines = append(lines, "  "+p.Key+": "+p.Value)
		}
		out := strings.Join(lines, "\n")
		if body := r.blocks(t.Blocks); body != "" {
			out += "\n\n" + body
		}
		return out

	case *ast.Page:
		head := "[Page " + t.Route
		if t.Layout != "" {
			head += " layout=" + t.Layout
		}
		head += "]"
		out := s.Page.Render(head)
		if t.Title != "" {
			out += " " + s.Bold.Render(t.Title)
		}
		if body := r.blocks(t.Blocks); body != "" {
			out += "\n\n" + body
		}
		return out

	case *ast.Unknown:
		out := s.Dim.Render("[" + t.Tag + "]")
		if t.Body != "" {
			out += "\n" + s.Dim.Render(t.Body)
		}
		return out

	default:
		return ""
	}
}

// barred renders an optional heading plus content behind a colored left
// border, one bar glyph per line.
func (r *Term) barred(bar lipgloss.Style, head, content string) string {
	var lines []string
	if head != "" {
		lines = append(lines, head)
	}
	if strings.TrimSpace(content) != "" {
		lines = append(lines, strings.Split(strings.TrimRight(content, "\n"), "\n")...)
	}
	for i, line := range lines {
		lines[i] = bar.Render("│") + " " + line
	}
	return strings.Join(lines, "\n")
}

func (r *Term) statusBadge(status ast.DecisionStatus) string {
	label := "[" + strings.ToUpper(string(status)) + "]"
	switch status {
	case ast.DecisionAccepted:
		return r.styles.Success.Render(label)
	case ast.DecisionRejected:
		return r.styles.Danger.Render(label)
	case ast.DecisionSuperseded:
		return r.styles.Dim.Render(label)
	default:
		return r.styles.Warning.Render(label)
	}
}

// boxTable draws a table with box-drawing characters, columns padded to
// the widest cell. Widths are computed on the raw text before styling.
func (r *Term) boxTable(headers []string, rows [][]string) string {
	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	pad := func(cell string, w int) string {
		return cell + strings.Repeat(" ", w-len([]rune(cell)))
	}
	sep := r.styles.Border.Render(" │ ")

	var lines []string
	if len(headers) > 0 {
		cells := make([]string, cols)
		for i := 0; i < cols; i++ {
			h := ""
			if i < len(headers) {
				h = headers[i]
			}
			cells[i] = r.styles.Bold.Render(pad(h, widths[i]))
		}
		lines = append(lines, strings.Join(cells, sep))

		dashes := make([]string, cols)
		for i, w := range widths {
			dashes[i] = strings.Repeat("─", w)
		}
		lines = append(lines, r.styles.Border.Render(strings.Join(dashes, "─┼─")))
	}
	for _, row := range rows {
		cells := make([]string, cols)
		for i := 0; i < cols; i++ {
			c := ""
			if i < len(row) {
				c = row[i]
			}
			cells[i] = pad(c, widths[i])
		}
		lines = append(lines, strings.Join(cells, sep))
	}
	return strings.Join(lines, "\n")
}
