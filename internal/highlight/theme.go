package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps fragments to terminal styles.
type Theme struct {
	Plain     lipgloss.Style
	Mention   lipgloss.Style
	Candidate lipgloss.Style
}

// DefaultTheme returns the theme used by the command line tool.
func DefaultTheme() *Theme {
	return &Theme{
		Plain: lipgloss.NewStyle(),
		Mention: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Candidate: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("11")),
	}
}

// StyleFor returns the style for a fragment.
func (t *Theme) StyleFor(f Fragment) lipgloss.Style {
	if f.Tag != TagEmphasize {
		return t.Plain
	}
	if f.Source == SourceCandidate {
		return t.Candidate
	}
	return t.Mention
}

// Render styles every fragment and joins the result.
func (t *Theme) Render(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(t.StyleFor(f).Render(f.Text))
	}
	return b.String()
}
