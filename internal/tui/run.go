package tui

import (
	"gxplorer/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser and blocks until the user quits.
// Settings changed from inside the UI persist to configPath; an empty
// path falls back to the default location.
func Run(cfg *config.Config, configPath string) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	if configPath == "" {
		configPath, _ = config.DefaultPath()
	}
	m.configPath = configPath
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
