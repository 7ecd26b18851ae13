package cli

import (
	"fmt"

	"github.com/agentforge-labs/agentforge/internal/config"
	"github.com/agentforge-labs/agentforge/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createCategory string
	createOutDir   string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Scaffold a new template manifest",
	Long:  `Create a new agent template manifest skeleton in the user template directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createCategory, "category", "custom", "Template category")
	createCmd.Flags().StringVar(&createOutDir, "dir", "", "Output directory (default: ~/.agentforge/templates)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	outDir := createOutDir
	if outDir == "" {
		outDir = config.TemplatesDir()
	}

	data := scaffold.NewData(args[0], createCategory)
	result, err := scaffold.Generate(data, outDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.Path)
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}
	fmt.Fprintln(out, "Edit the manifest, then run 'agentforge validate' on it.")
	return nil
}
