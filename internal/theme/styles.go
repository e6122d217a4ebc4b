package theme

import (
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/domain"
)

// Styles are the display styles derived from the settings' source colors.
// They are a pure function of the settings and are rebuilt after every
// color change, never persisted on their own.
type Styles struct {
	Default         lipgloss.Style
	Highlight       lipgloss.Style
	ActiveNormal    lipgloss.Style
	ActiveHighlight lipgloss.Style
	Title           lipgloss.Style
	Border          lipgloss.Style
}

// creates all styles from the given settings
func NewStyles(s domain.Settings) *Styles {
	return &Styles{
		Default: lipgloss.NewStyle().
			Foreground(Color(s.NormalFg)).
			Background(Color(s.NormalBg)),

		Highlight: lipgloss.NewStyle().
			Foreground(Color(s.SelectFg)).
			Background(Color(s.SelectBg)),

		ActiveNormal: lipgloss.NewStyle().
			Foreground(Color(s.ActiveFg)).
			Background(Color(s.NormalBg)),

		ActiveHighlight: lipgloss.NewStyle().
			Foreground(Color(s.ActiveFg)).
			Background(Color(s.SelectBg)),

		Title: lipgloss.NewStyle().
			Foreground(Color(s.TitleFg)).
			Background(Color(s.NormalBg)).
			Bold(true),

		Border: lipgloss.NewStyle().
			Foreground(Color(s.Border)).
			Background(Color(s.NormalBg)),
	}
}
