// Package styles maps the configured theme onto lipgloss styles.
package styles

import (
	"gxplorer/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds every style the dual-pane view needs. Rebuilt whenever
// the theme changes.
type Styles struct {
	Title          lipgloss.Style
	ActivePane     lipgloss.Style
	InactivePane   lipgloss.Style
	PathBar        lipgloss.Style
	Cursor         lipgloss.Style
	Selected       lipgloss.Style
	SelectedCursor lipgloss.Style
	Entry          lipgloss.Style
	Directory      lipgloss.Style
	Status         lipgloss.Style
	Error          lipgloss.Style
	Help           lipgloss.Style
	Prompt         lipgloss.Style
}

// FromConfig builds the style set from the active theme colors.
func FromConfig(cfg *config.Config) Styles {
	primary := lipgloss.Color(cfg.Theme.Primary)
	success := lipgloss.Color(cfg.Theme.Success)
	errColor := lipgloss.Color(cfg.Theme.Error)
	info := lipgloss.Color(cfg.Theme.Info)
	emphasis := lipgloss.Color(cfg.Theme.Emphasis)
	border := lipgloss.Color(cfg.Theme.Border)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		InactivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PathBar: lipgloss.NewStyle().
			Foreground(info).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Reverse(true),
		Selected: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		SelectedCursor: lipgloss.NewStyle().
			Foreground(success).
			Bold(true).
			Reverse(true),
		Entry: lipgloss.NewStyle(),
		Directory: lipgloss.NewStyle().
			Foreground(emphasis).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(info),
		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Prompt: lipgloss.NewStyle().
			Foreground(emphasis),
	}
}
