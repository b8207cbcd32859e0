package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Filter        lipgloss.Style
	FilterActive  lipgloss.Style
	CardTitle     lipgloss.Style
	Label         lipgloss.Style
	Spots         lipgloss.Style
	SpotsFull     lipgloss.Style
	Participant   lipgloss.Style
	Focused       lipgloss.Style
	DeleteMarker  lipgloss.Style
	Placeholder   lipgloss.Style
	FormBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	LoadError     lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:          lipgloss.NewStyle().Faint(true),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FilterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:        lipgloss.NewStyle().Bold(true),
		Spots:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SpotsFull:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Participant:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:      lipgloss.NewStyle().Background(lipgloss.Color("238")),
		DeleteMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Placeholder:  lipgloss.NewStyle().Italic(true).Faint(true),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			MarginBottom(1).
			BorderForeground(lipgloss.Color("241")),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		LoadError:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title: plain, Dim: plain, Filter: plain, FilterActive: plain,
		CardTitle: plain, Label: plain, Spots: plain, SpotsFull: plain,
		Participant: plain, Focused: plain, DeleteMarker: plain, Placeholder: plain,
		FormBox: plain, Help: plain, Main: plain, Scroll: plain,
		StatusError: plain, StatusSuccess: plain, LoadError: plain, SelectionBg: plain,
	}
}
