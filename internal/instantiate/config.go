package instantiate

import (
	"time"

	"github.com/google/uuid"
)

// AgentConfig is the fully resolved output artifact of an instantiation
// request, ready to hand to an agent runtime. It is immutable once built:
// the constructor takes defensive copies of every slice and map, and the
// caller that requested it owns it exclusively.
type AgentConfig struct {
	// ID uniquely identifies this instantiation.
	ID string `json:"id"`

	TemplateName           string            `json:"template_name"`
	ResolvedSpecialization map[string]string `json:"resolved_specialization,omitempty"`
	RenderedPrompt         string            `json:"rendered_prompt"`

	// EffectiveTools is the sorted, deduplicated union of the template's
	// default tools and the requested capabilities' required tools.
	EffectiveTools []string `json:"effective_tools,omitempty"`

	// EffectivePermissions is the sorted, deduplicated union of the
	// template-level and capability-level required permissions.
	EffectivePermissions []string `json:"effective_permissions,omitempty"`

	// PersonalityTraits are copied verbatim from the template.
	PersonalityTraits []string `json:"personality_traits,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// newAgentConfig assembles an AgentConfig from validated pipeline output,
// copying every container so no shared mutable state escapes.
func newAgentConfig(templateName, prompt string, specialization map[string]string, tools, permissions, traits []string) *AgentConfig {
	return &AgentConfig{
		ID:                     uuid.NewString(),
		TemplateName:           templateName,
		ResolvedSpecialization: copyMap(specialization),
		RenderedPrompt:         prompt,
		EffectiveTools:         copySlice(tools),
		EffectivePermissions:   copySlice(permissions),
		PersonalityTraits:      copySlice(traits),
		CreatedAt:              time.Now().UTC(),
	}
}

func copySlice(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}

func copyMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
