package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary     = lipgloss.Color("#3B82F6")
	warning     = lipgloss.Color("#EAB308")
	destructive = lipgloss.Color("#EF4444")
	success     = lipgloss.Color("#22C55E")
	muted       = lipgloss.Color("#6B7280")
	border      = lipgloss.Color("#D1D5DB")
)

// Styles holds the styled pieces the view is built from.
type Styles struct {
	Title    lipgloss.Style
	Input    lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Edit     lipgloss.Style
	Delete   lipgloss.Style
	Save     lipgloss.Style
	Muted    lipgloss.Style
	Overlay  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Padding(0, 2),
		Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Edit:     lipgloss.NewStyle().Foreground(warning),
		Delete:   lipgloss.NewStyle().Foreground(destructive),
		Save:     lipgloss.NewStyle().Foreground(success),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(40),
	}
}
