package template

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// BuiltinTemplates parses the embedded default templates, sorted by file
// name for deterministic ordering.
func BuiltinTemplates() ([]*AgentTemplate, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	templates := make([]*AgentTemplate, 0, len(entries))
	for _, entry := range entries {
		data, err := fs.ReadFile(builtinFS, "builtin/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded template %s: %w", entry.Name(), err)
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("embedded template %s: %w", entry.Name(), err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// Builtin loads the embedded default templates into a Registry.
func Builtin() (*Registry, error) {
	templates, err := BuiltinTemplates()
	if err != nil {
		return nil, err
	}
	return Load(templates)
}
