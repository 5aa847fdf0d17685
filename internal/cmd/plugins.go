package cmd

import (
	"fmt"
	"os"
	"strings"

	"gxplorer/internal/plugin"

	"github.com/spf13/cobra"
)

// pluginsCmd lists discovered plugins and can run one against a file.
func pluginsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List installed plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := plugin.NewManager(cfg.Plugins.Directory)
			if err := mgr.Discover(); err != nil {
				return err
			}

			plugins := mgr.Plugins()
			if len(plugins) == 0 {
				fmt.Printf("No plugins found in %s\n", cfg.Plugins.Directory)
				return nil
			}
			for _, p := range plugins {
				fmt.Printf("  %-20s %s\n", p.Name, p.Description)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run <name> [file]",
		Short: "Run a plugin against a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := plugin.NewManager(cfg.Plugins.Directory)
			if err := mgr.Discover(); err != nil {
				return err
			}

			file := ""
			if len(args) > 1 {
				file = args[1]
			}
			dir, err := os.Getwd()
			if err != nil {
				return err
			}

			out, err := mgr.Run(args[0], file, dir)
			if err != nil {
				return err
			}
			if out = strings.TrimSpace(out); out != "" {
				fmt.Println(out)
			}
			return nil
		},
	})

	return cmd
}
