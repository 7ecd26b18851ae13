package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show a template's capabilities, options, and traits",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the full template definition as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("loading template registry: %w", err)
	}

	t, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", t.Name)
	fmt.Fprintf(out, "Category:    %s\n", t.Category)
	if t.Version != "" {
		fmt.Fprintf(out, "Version:     %s\n", t.Version)
	}
	fmt.Fprintf(out, "Description: %s\n", t.Description)

	if len(t.Capabilities) > 0 {
		fmt.Fprintln(out, "\nCapabilities:")
		for _, c := range t.Capabilities {
			fmt.Fprintf(out, "  %s: %s\n", c.Name, c.Description)
			if len(c.RequiredTools) > 0 {
				fmt.Fprintf(out, "    tools: %s\n", strings.Join(c.RequiredTools, ", "))
			}
			if len(c.RequiredPermissions) > 0 {
				fmt.Fprintf(out, "    permissions: %s\n", strings.Join(c.RequiredPermissions, ", "))
			}
		}
	}

	if len(t.DefaultTools) > 0 {
		fmt.Fprintf(out, "\nDefault tools: %s\n", strings.Join(t.DefaultTools, ", "))
	}
	if len(t.RequiredPermissions) > 0 {
		fmt.Fprintf(out, "Required permissions: %s\n", strings.Join(t.RequiredPermissions, ", "))
	}

	if len(t.SpecializationOptions) > 0 {
		fmt.Fprintln(out, "\nSpecialization options:")
		options := make([]string, 0, len(t.SpecializationOptions))
		for option := range t.SpecializationOptions {
			options = append(options, option)
		}
		sort.Strings(options)
		for _, option := range options {
			fmt.Fprintf(out, "  %s: %s\n", option, strings.Join(t.SpecializationOptions[option], ", "))
		}
	}

	if len(t.PersonalityTraits) > 0 {
		fmt.Fprintln(out, "\nPersonality traits:")
		for _, trait := range t.PersonalityTraits {
			fmt.Fprintf(out, "  - %s\n", trait)
		}
	}

	return nil
}
