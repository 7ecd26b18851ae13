package template

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// checkTemplate verifies the structural invariants of a single template.
// It returns nil when the template is well-formed, or a *SchemaError listing
// every violation found.
func checkTemplate(t *AgentTemplate) error {
	var issues []string

	if t.Name == "" {
		issues = append(issues, "missing required field 'name'")
	}
	if t.Description == "" {
		issues = append(issues, "missing required field 'description'")
	}
	if t.BasePromptTemplate == "" {
		issues = append(issues, "missing required field 'base_prompt_template'")
	}
	if t.Category != "" && !validCategory(t.Category) {
		issues = append(issues, fmt.Sprintf("invalid category %q", t.Category))
	}
	if t.Version != "" {
		if _, err := semver.NewVersion(t.Version); err != nil {
			issues = append(issues, fmt.Sprintf("invalid version %q: not a semantic version", t.Version))
		}
	}

	issues = append(issues, checkCapabilities(t)...)
	issues = append(issues, checkOptions(t)...)
	issues = append(issues, checkPlaceholders(t)...)

	if len(issues) > 0 {
		return &SchemaError{Template: t.Name, Issues: issues}
	}
	return nil
}

// checkCapabilities enforces uniqueness and required fields on the
// capability list.
func checkCapabilities(t *AgentTemplate) []string {
	var issues []string
	seen := make(map[string]bool, len(t.Capabilities))
	for i, c := range t.Capabilities {
		if c.Name == "" {
			issues = append(issues, fmt.Sprintf("capability %d: missing required field 'name'", i))
			continue
		}
		if seen[c.Name] {
			issues = append(issues, fmt.Sprintf("duplicate capability name %q", c.Name))
		}
		seen[c.Name] = true
	}
	return issues
}

// checkOptions enforces non-empty allowed-value sets and flags duplicate
// values inside one option.
func checkOptions(t *AgentTemplate) []string {
	var issues []string
	for _, name := range sortedKeys(t.SpecializationOptions) {
		values := t.SpecializationOptions[name]
		if len(values) == 0 {
			issues = append(issues, fmt.Sprintf("specialization option %q has no allowed values", name))
			continue
		}
		seen := make(map[string]bool, len(values))
		for _, v := range values {
			if seen[v] {
				issues = append(issues, fmt.Sprintf("specialization option %q lists value %q twice", name, v))
			}
			seen[v] = true
		}
	}
	return issues
}

// checkPlaceholders enforces the closed-world rule: every {placeholder} in
// the base prompt names a declared option, and every declared option is used
// by the prompt.
func checkPlaceholders(t *AgentTemplate) []string {
	var issues []string

	used := make(map[string]bool)
	for _, name := range t.Placeholders() {
		used[name] = true
		if _, ok := t.SpecializationOptions[name]; !ok {
			issues = append(issues, fmt.Sprintf("prompt placeholder {%s} is not declared in specialization_options", name))
		}
	}
	for _, name := range sortedKeys(t.SpecializationOptions) {
		if !used[name] {
			issues = append(issues, fmt.Sprintf("specialization option %q never appears in base_prompt_template", name))
		}
	}
	return issues
}

// sortedKeys returns the keys of m in sorted order, for deterministic
// issue reporting.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
