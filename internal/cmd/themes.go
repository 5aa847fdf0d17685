package cmd

import (
	"fmt"

	"gxplorer/internal/config"

	"github.com/spf13/cobra"
)

// themesCmd lists the available themes and can persist a new choice.
func themesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListThemes() {
				marker := "  "
				if name == cfg.Theme.Name {
					marker = "* "
				}
				fmt.Printf("%s%s\n", marker, name)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Switch the active theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			found := false
			for _, t := range config.ListThemes() {
				if t == name {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown theme %q, run 'gxplorer themes' for the list", name)
			}

			cfg.ApplyTheme(name)
			path := cfgFile
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", name)
			return nil
		},
	})

	return cmd
}
