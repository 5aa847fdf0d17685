package cmd

import (
	"fmt"

	"gxplorer/internal/gui"

	"github.com/spf13/cobra"
)

// guiCmd creates the GUI command
func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the desktop version of gxplorer for a more visual browsing experience.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("this build was compiled without GUI support")
			}
			fmt.Println("Launching GUI interface...")
			return gui.StartGUI(cfg)
		},
	}
}
