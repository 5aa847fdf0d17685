package cmd

import (
	"fmt"
	"os"
	"sort"

	"gxplorer/internal/analysis"

	"github.com/spf13/cobra"
)

// statsCmd summarizes a directory by content type.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [directory]",
		Short: "Summarize a directory by file type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			} else {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					return err
				}
			}

			summary, err := analysis.New().ScanDirectory(dir)
			if err != nil {
				return err
			}

			fmt.Printf("== %s ==\n", summary.Dir)
			fmt.Printf("%d files, %d directories, %d bytes total\n", summary.Files, summary.Dirs, summary.TotalSize)

			groups := make([]string, 0, len(summary.ByType))
			for g := range summary.ByType {
				groups = append(groups, g)
			}
			sort.Slice(groups, func(i, j int) bool {
				return summary.ByType[groups[i]].Size > summary.ByType[groups[j]].Size
			})

			for _, g := range groups {
				stat := summary.ByType[g]
				fmt.Printf("  %-12s %4d files %12d bytes\n", g, stat.Count, stat.Size)
			}
			return nil
		},
	}
}
