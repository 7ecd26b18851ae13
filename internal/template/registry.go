package template

import (
	"fmt"
	"sort"
)

// Registry is an immutable index of agent templates keyed by name. Build one
// with Load; after that it is safe for unrestricted concurrent reads.
type Registry struct {
	templates map[string]*AgentTemplate
}

// Load validates a collection of template definitions and builds a Registry.
// It fails with a *SchemaError on the first template that violates the
// structural invariants or duplicates an earlier template's name.
func Load(templates []*AgentTemplate) (*Registry, error) {
	byName := make(map[string]*AgentTemplate, len(templates))
	for _, t := range templates {
		if err := checkTemplate(t); err != nil {
			return nil, err
		}
		if _, exists := byName[t.Name]; exists {
			return nil, &SchemaError{
				Template: t.Name,
				Issues:   []string{fmt.Sprintf("duplicate template name %q", t.Name)},
			}
		}
		byName[t.Name] = t
	}
	return &Registry{templates: byName}, nil
}

// Lookup returns the template with the given name, or a *NotFoundError.
func (r *Registry) Lookup(name string) (*AgentTemplate, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return t, nil
}

// Names returns all registered template names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the templates in a category, sorted by name. An empty
// category returns every template.
func (r *Registry) List(category Category) []*AgentTemplate {
	var out []*AgentTemplate
	for _, name := range r.Names() {
		t := r.templates[name]
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}
