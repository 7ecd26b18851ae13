package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentforge-labs/agentforge/internal/instantiate"
	"github.com/spf13/cobra"
)

var (
	instSet             []string
	instCapabilities    []string
	instTools           []string
	instPermissions     []string
	instAssumeAvailable bool
	instPromptOnly      bool
	instWithTraits      bool
)

var instantiateCmd = &cobra.Command{
	Use:   "instantiate <template>",
	Short: "Resolve a template into a ready-to-run agent configuration",
	Long: `Run the full instantiation pipeline: capability resolution, specialization
validation, prompt rendering, and the tool/permission availability gate.
Prints the resulting agent configuration as JSON.`,
	Example: `  agentforge instantiate developer --set language=Rust --set specialty=systems \
      --tool code_edit --tool code_review --tool run_tests`,
	Args: cobra.ExactArgs(1),
	RunE: runInstantiate,
}

func init() {
	instantiateCmd.Flags().StringArrayVar(&instSet, "set", nil, "Specialization value as option=value (repeatable)")
	instantiateCmd.Flags().StringArrayVar(&instCapabilities, "capability", nil, "Capability to activate (repeatable; default: all)")
	instantiateCmd.Flags().StringArrayVar(&instTools, "tool", nil, "Tool available in the target environment (repeatable)")
	instantiateCmd.Flags().StringArrayVar(&instPermissions, "permission", nil, "Permission granted in the target environment (repeatable)")
	instantiateCmd.Flags().BoolVar(&instAssumeAvailable, "assume-available", false, "Skip the availability gate by assuming every requirement is satisfied")
	instantiateCmd.Flags().BoolVar(&instPromptOnly, "prompt", false, "Print only the rendered prompt")
	instantiateCmd.Flags().BoolVar(&instWithTraits, "with-traits", false, "Append the personality traits block to the printed prompt")
	rootCmd.AddCommand(instantiateCmd)
}

func runInstantiate(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("loading template registry: %w", err)
	}

	specialization, err := parseSetFlags(instSet)
	if err != nil {
		return err
	}

	req := instantiate.Request{
		TemplateName:       args[0],
		Capabilities:       instCapabilities,
		Specialization:     specialization,
		AvailableTools:     instTools,
		GrantedPermissions: instPermissions,
	}

	if instAssumeAvailable {
		// Satisfy the gate with the template's own requirements. Lookup and
		// resolution errors surface from Instantiate below either way.
		if t, err := reg.Lookup(req.TemplateName); err == nil {
			if tools, perms, err := instantiate.ResolveCapabilities(t, req.Capabilities); err == nil {
				req.AvailableTools = tools
				req.GrantedPermissions = perms
			}
		}
	}

	cfg, err := instantiate.Instantiate(reg, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if instPromptOnly {
		prompt := cfg.RenderedPrompt
		if instWithTraits {
			prompt = instantiate.AppendTraits(prompt, cfg.PersonalityTraits)
		}
		fmt.Fprintln(out, prompt)
		return nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// parseSetFlags converts repeated option=value flags into a specialization
// map. nil input yields an empty map, which is valid for templates with no
// specialization options.
func parseSetFlags(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q: expected option=value", pair)
		}
		values[key] = value
	}
	return values, nil
}
