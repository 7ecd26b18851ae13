package instantiate

import (
	"github.com/agentforge-labs/agentforge/internal/template"
)

// Request describes one instantiation call.
type Request struct {
	// TemplateName selects the template from the registry.
	TemplateName string

	// Capabilities names the capabilities to activate. nil selects all of
	// the template's capabilities; an empty non-nil slice selects none
	// (defaults still apply).
	Capabilities []string

	// Specialization supplies one value per declared specialization option.
	Specialization map[string]string

	// AvailableTools is the tool inventory of the caller's environment.
	AvailableTools []string

	// GrantedPermissions is the permission set of the caller's environment.
	GrantedPermissions []string
}

// Instantiate runs the full resolution pipeline against a registry snapshot
// and returns an immutable AgentConfig. Any stage failure aborts the call
// with that stage's typed error; no partial config is ever returned.
//
// The availability gate requires every effective tool to be present in
// req.AvailableTools and every effective permission in
// req.GrantedPermissions. Tools are checked first, so an environment missing
// both reports *CapabilityUnavailableError.
func Instantiate(reg *template.Registry, req Request) (*AgentConfig, error) {
	t, err := reg.Lookup(req.TemplateName)
	if err != nil {
		return nil, err
	}

	tools, permissions, err := ResolveCapabilities(t, req.Capabilities)
	if err != nil {
		return nil, err
	}

	resolved, err := ValidateSpecialization(t, req.Specialization)
	if err != nil {
		return nil, err
	}

	prompt, err := RenderPrompt(t, resolved)
	if err != nil {
		return nil, err
	}

	if missing := missingFrom(tools, req.AvailableTools); len(missing) > 0 {
		return nil, &CapabilityUnavailableError{Template: t.Name, MissingTools: missing}
	}
	if missing := missingFrom(permissions, req.GrantedPermissions); len(missing) > 0 {
		return nil, &PermissionDeniedError{Template: t.Name, MissingPermissions: missing}
	}

	return newAgentConfig(t.Name, prompt, resolved, tools, permissions, t.PersonalityTraits), nil
}

// missingFrom returns the members of required absent from provided.
// required is already sorted, so the result is too.
func missingFrom(required, provided []string) []string {
	have := make(map[string]bool, len(provided))
	for _, v := range provided {
		have[v] = true
	}
	var missing []string
	for _, v := range required {
		if !have[v] {
			missing = append(missing, v)
		}
	}
	return missing
}
