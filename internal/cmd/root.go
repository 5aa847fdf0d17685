// Package cmd wires the command line surface. The bare command starts
// the dual-pane terminal browser; subcommands cover the GUI and small
// maintenance tasks.
package cmd

import (
	"gxplorer/internal/config"
	"gxplorer/internal/log"
	"gxplorer/internal/tui"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	verbose bool

	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gxplorer",
	Short: "A dual-pane file explorer for the terminal and desktop",
	Long: `
	:'######::'##::::'##:'########::'##::::::::'#######::'########::'########:'########::
	'##... ##:. ##::'##:: ##.... ##: ##:::::::'##.... ##: ##.... ##: ##.....:: ##.... ##:
	 ##:::..:::. ##'##::: ##:::: ##: ##::::::: ##:::: ##: ##:::: ##: ##::::::: ##:::: ##:
	 ##::'####:::. ###:::: ########:: ##::::::: ##:::: ##: ########:: ######::: ########::
	 ##::: ##::: ## ##::: ##.....::: ##::::::: ##:::: ##: ##.. ##::: ##...:::: ##.. ##:::
	 ##::: ##:: ##:. ##:: ##:::::::: ##::::::: ##:::: ##: ##::. ##:: ##::::::: ##::. ##::
	. ######:: ##:::. ##: ##:::::::: ########:. #######:: ##:::. ##: ########: ##:::. ##:
	:......:::..:::::..::..:::::::::........:::.......:::..:::::..::........::..:::::..::

Two panes, one keyboard. Copy, move and browse without leaving the terminal.
	`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDebug(verbose)

		var err error
		if cfgFile != "" {
			cfg, err = config.LoadConfigFile(cfgFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			log.Warnf("cannot load config: %v, using defaults", err)
			cfg = config.New()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// A positional argument overrides the left pane start directory.
		if len(args) > 0 {
			cfg.Panels.Left = args[0]
		}
		return tui.Run(cfg, cfgFile)
	},
	Args: cobra.MaximumNArgs(1),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gxplorer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(themesCmd())
	rootCmd.AddCommand(pluginsCmd())
	rootCmd.AddCommand(statsCmd())
}
