package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

// newStyles binds styles to out; colors are dropped when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#2ECC71")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}
