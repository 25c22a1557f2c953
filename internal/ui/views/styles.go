package views

import (
	"github.com/charmbracelet/lipgloss"

	"launchlist/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Selected    lipgloss.Style
	SelectedSub lipgloss.Style
	Icon        lipgloss.Style
	List        lipgloss.Style
	Status      lipgloss.Style
	Scroll      lipgloss.Style
	HelpTitle   lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles builds the styles for theme
func NewStyles(theme domain.Theme) *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Title)),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtitle)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Selected)).
			Background(lipgloss.Color(theme.SelectedBg)).
			Bold(true),
		SelectedSub: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtitle)).
			Background(lipgloss.Color(theme.SelectedBg)),
		Icon: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)),
		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HelpTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		HelpSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		HelpKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
