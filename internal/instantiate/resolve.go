package instantiate

import (
	"sort"

	"github.com/agentforge-labs/agentforge/internal/template"
)

// ResolveCapabilities computes the deduplicated union of tools and
// permissions a template instantiation requires. A nil requested slice
// selects every declared capability; otherwise each requested name must
// exist on the template or the call fails with *UnknownCapabilityError.
//
// The template's default tools and template-level permissions are always
// included, regardless of the requested subset. Both result slices are
// sorted so identical inputs produce identical output.
func ResolveCapabilities(t *template.AgentTemplate, requested []string) (tools, permissions []string, err error) {
	selected := t.Capabilities
	if requested != nil {
		selected = make([]template.Capability, 0, len(requested))
		var unknown []string
		for _, name := range requested {
			c, ok := t.Capability(name)
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			selected = append(selected, c)
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, nil, &UnknownCapabilityError{Template: t.Name, Names: unknown}
		}
	}

	toolSet := make(map[string]bool)
	permSet := make(map[string]bool)
	for _, tool := range t.DefaultTools {
		toolSet[tool] = true
	}
	for _, perm := range t.RequiredPermissions {
		permSet[perm] = true
	}
	for _, c := range selected {
		for _, tool := range c.RequiredTools {
			toolSet[tool] = true
		}
		for _, perm := range c.RequiredPermissions {
			permSet[perm] = true
		}
	}

	return sortedSet(toolSet), sortedSet(permSet), nil
}

// sortedSet returns the members of a set as a sorted slice.
func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
