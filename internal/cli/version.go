package cli

import (
	"fmt"

	"github.com/agentforge-labs/agentforge/internal/branding"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", branding.CLIName(), buildVersion)
		fmt.Fprintf(out, "  commit: %s\n", buildCommit)
		fmt.Fprintf(out, "  built:  %s\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
