package instantiate

import (
	"sort"

	"github.com/agentforge-labs/agentforge/internal/template"
)

// ValidateSpecialization checks caller-supplied specialization values
// against a template's declared options. Every declared option must be
// present (no implicit defaults), every supplied key must be declared, and
// every supplied value must be a member of its option's allowed set. A
// template with zero options accepts an empty (or nil) values map.
//
// This is a pure validation pass: on success it returns the same mapping it
// was given.
func ValidateSpecialization(t *template.AgentTemplate, values map[string]string) (map[string]string, error) {
	var unknown []string
	for key := range values {
		if _, ok := t.SpecializationOptions[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownSpecializationOptionError{Template: t.Name, Options: unknown}
	}

	var missing []string
	for option := range t.SpecializationOptions {
		if _, ok := values[option]; !ok {
			missing = append(missing, option)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingSpecializationError{Template: t.Name, Missing: missing}
	}

	// Deterministic option order so the first violation reported is stable.
	options := make([]string, 0, len(t.SpecializationOptions))
	for option := range t.SpecializationOptions {
		options = append(options, option)
	}
	sort.Strings(options)

	for _, option := range options {
		allowed := t.SpecializationOptions[option]
		value := values[option]
		if !contains(allowed, value) {
			return nil, &InvalidSpecializationError{
				Template: t.Name,
				Option:   option,
				Value:    value,
				Allowed:  append([]string(nil), allowed...),
			}
		}
	}

	return values, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
