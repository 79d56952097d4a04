package session

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for session output
type Styles struct {
	Header      lipgloss.Style
	Digest      lipgloss.Style
	Menu        lipgloss.Style
	Prompt      lipgloss.Style
	Win         lipgloss.Style
	Lose        lipgloss.Style
	Draw        lipgloss.Style
	Error       lipgloss.Style
	Info        lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}

// NewStyles creates styles bound to a renderer for w. When plain is set the
// renderer uses the ASCII profile and emits no escape sequences.
func NewStyles(w io.Writer, plain bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Digest: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Menu: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		TableHeader: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true).
			Padding(0, 1),
		TableCell: r.NewStyle().
			Padding(0, 1),
		TableBorder: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
