package cli

import (
	"errors"
	"fmt"

	"github.com/agentforge-labs/agentforge/internal/template"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a template manifest file",
	Long: `Validate a template manifest against the JSON schema and the registry's
semantic rules (unique capability names, closed-world placeholders, non-empty
option sets).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	result, err := template.ValidateManifestFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		fmt.Fprintf(out, "INVALID %s\n", path)
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "  %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "  %s\n", issue.Message)
			}
		}
		return fmt.Errorf("%d schema issue(s) in %s", len(result.Issues), path)
	}

	// Schema passed; run the registry's semantic checks too.
	t, err := template.ParseFile(path)
	if err != nil {
		return err
	}
	if _, err := template.Load([]*template.AgentTemplate{t}); err != nil {
		var schemaErr *template.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(out, "INVALID %s\n", path)
			for _, issue := range schemaErr.Issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			return fmt.Errorf("%d semantic issue(s) in %s", len(schemaErr.Issues), path)
		}
		return err
	}

	fmt.Fprintf(out, "VALID %s (template %q)\n", path, t.Name)
	return nil
}
