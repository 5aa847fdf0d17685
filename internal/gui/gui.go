//go:build !nogui
// +build !nogui

package gui

import "gxplorer/internal/config"

// StartGUI builds the application window and runs it to completion.
func StartGUI(cfg *config.Config) error {
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	a.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
