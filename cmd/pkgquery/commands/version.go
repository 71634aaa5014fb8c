package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build info, set via -ldflags at build time:
//
//	go build -ldflags "-X pkgquery/cmd/pkgquery/commands.Version=1.0.0"
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pkgquery %s\n", Version)
		if CommitID != "unknown" {
			fmt.Fprintf(out, "Commit: %s\n", CommitID)
		}
		if BuildDate != "unknown" {
			fmt.Fprintf(out, "Built: %s\n", BuildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
