package template

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals a YAML template manifest. It performs no semantic
// validation; pass the result to Load (or the raw bytes to ValidateManifest)
// for that.
func Parse(data []byte) (*AgentTemplate, error) {
	var t AgentTemplate
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing template manifest: %w", err)
	}
	return &t, nil
}

// ParseFile reads and parses a template manifest file.
func ParseFile(path string) (*AgentTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template manifest %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template manifest %s: %w", path, err)
	}
	return t, nil
}
