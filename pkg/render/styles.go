package render

import "github.com/charmbracelet/lipgloss"

// termStyles holds the lipgloss styles the terminal renderer draws with.
type termStyles struct {
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Strike  lipgloss.Style
	Border  lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Page    lipgloss.Style
}

// newTermStyles creates the style set for the given color mode.
func newTermStyles(colorEnabled bool) *termStyles {
	if !colorEnabled {
		return newPlainTermStyles()
	}
	return newColorTermStyles()
}

func newColorTermStyles() *termStyles {
	return &termStyles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Strike:  lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Page:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	}
}

func newPlainTermStyles() *termStyles {
	plain := lipgloss.NewStyle()
	return &termStyles{
		Bold:    plain,
		Dim:     plain,
		Strike:  plain,
		Border:  plain,
		Accent:  plain,
		Success: plain,
		Warning: plain,
		Danger:  plain,
		Page:    plain,
	}
}

// calloutBar maps a callout type to the color of its left border.
func (s *termStyles) calloutBar(kind string) lipgloss.Style {
	switch kind {
	case "warning":
		return s.Warning
	case "danger":
		return s.Danger
	case "tip", "success":
		return s.Success
	default:
		return s.Accent
	}
}
