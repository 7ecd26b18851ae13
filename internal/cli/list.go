package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/agentforge-labs/agentforge/internal/template"
	"github.com/spf13/cobra"
)

var (
	listCategoryFilter string
	listJSON           bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available agent templates",
	Long:  `List the built-in templates plus any templates found in configured template directories.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategoryFilter, "category", "", "Filter by category (coding, research, writing, ...)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one template for display.
type listEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("loading template registry: %w", err)
	}

	templates := reg.List(template.Category(listCategoryFilter))
	if len(templates) == 0 {
		if listCategoryFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No templates matching --category=%s\n", listCategoryFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No templates available.")
		}
		return nil
	}

	entries := make([]listEntry, 0, len(templates))
	for _, t := range templates {
		entries = append(entries, listEntry{
			Name:        t.Name,
			Category:    string(t.Category),
			Version:     t.Version,
			Description: t.Description,
		})
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Category, version, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
