package template

import "regexp"

// Category classifies a template. Informational only; it never affects
// resolution or instantiation.
type Category string

// Category constants for the category field.
const (
	CategoryGeneral       Category = "general"
	CategoryCoding        Category = "coding"
	CategoryResearch      Category = "research"
	CategoryWriting       Category = "writing"
	CategoryAnalysis      Category = "analysis"
	CategoryCreative      Category = "creative"
	CategoryOrchestration Category = "orchestration"
	CategoryCustom        Category = "custom"
)

// ValidCategories contains all valid category values.
var ValidCategories = []Category{
	CategoryGeneral,
	CategoryCoding,
	CategoryResearch,
	CategoryWriting,
	CategoryAnalysis,
	CategoryCreative,
	CategoryOrchestration,
	CategoryCustom,
}

// Capability is a named unit of agent functionality together with the tools
// and permissions it needs. Tool and permission lists are treated as sets:
// overlap between capabilities (or with the template defaults) is harmless
// and deduplicated during resolution.
type Capability struct {
	Name                string   `yaml:"name" json:"name"`
	Description         string   `yaml:"description" json:"description"`
	RequiredTools       []string `yaml:"required_tools,omitempty" json:"required_tools,omitempty"`
	RequiredPermissions []string `yaml:"required_permissions,omitempty" json:"required_permissions,omitempty"`
}

// AgentTemplate is an immutable named blueprint for constructing an agent
// configuration. Instances are created at registry load time and must not be
// mutated afterwards.
type AgentTemplate struct {
	Name        string   `yaml:"name" json:"name"`
	Category    Category `yaml:"category" json:"category"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Description string   `yaml:"description" json:"description"`

	// Capabilities is ordered; names must be unique within one template.
	Capabilities []Capability `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`

	// BasePromptTemplate may contain {placeholder} tokens. Every placeholder
	// must name a key of SpecializationOptions and every key must appear as
	// a placeholder (closed world, checked at load time).
	BasePromptTemplate string `yaml:"base_prompt_template" json:"base_prompt_template"`

	// DefaultTools are required unconditionally, regardless of which
	// capabilities a caller requests.
	DefaultTools []string `yaml:"default_tools,omitempty" json:"default_tools,omitempty"`

	// RequiredPermissions are required unconditionally at the template level.
	RequiredPermissions []string `yaml:"required_permissions,omitempty" json:"required_permissions,omitempty"`

	// PersonalityTraits are carried verbatim into the final AgentConfig.
	PersonalityTraits []string `yaml:"personality_traits,omitempty" json:"personality_traits,omitempty"`

	// SpecializationOptions maps an option name to its non-empty set of
	// allowed values. These are the only legal axes of customization.
	SpecializationOptions map[string][]string `yaml:"specialization_options,omitempty" json:"specialization_options,omitempty"`
}

// PlaceholderPattern matches {ident} placeholder tokens in a base prompt
// template. The capture group holds the placeholder name.
var PlaceholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Placeholders returns the distinct placeholder names in the template's base
// prompt, in order of first appearance.
func (t *AgentTemplate) Placeholders() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range PlaceholderPattern.FindAllStringSubmatch(t.BasePromptTemplate, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Capability returns the named capability, or false when the template does
// not declare it.
func (t *AgentTemplate) Capability(name string) (Capability, bool) {
	for _, c := range t.Capabilities {
		if c.Name == name {
			return c, true
		}
	}
	return Capability{}, false
}

// validCategory reports whether c is one of the declared category values.
func validCategory(c Category) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}
