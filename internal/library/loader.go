package library

import (
	"fmt"
	"os"

	"github.com/agentforge-labs/agentforge/internal/template"
)

// LoadSources builds a registry snapshot from the source directories merged
// over the embedded builtins. Source templates take priority: a source
// manifest named like a builtin replaces it, and earlier sources win over
// later ones. Every source manifest must pass JSON-schema validation before
// the registry's own semantic checks run.
func LoadSources(sources []Source) (*template.Registry, error) {
	discovered, err := DiscoverAll(sources)
	if err != nil {
		return nil, err
	}
	return loadDiscovered(discovered)
}

// LoadSourcesCached is LoadSources backed by the discovery cache: unchanged
// sources are served from the cache file instead of being rescanned.
func LoadSourcesCached(sources []Source, cachePath string) (*template.Registry, error) {
	discovered, err := DiscoverAllCached(sources, cachePath)
	if err != nil {
		return nil, err
	}
	return loadDiscovered(discovered)
}

// loadDiscovered parses and validates every discovered manifest and merges
// the result over the embedded builtins.
func loadDiscovered(discovered []DiscoveredTemplate) (*template.Registry, error) {
	seen := make(map[string]bool, len(discovered))
	templates := make([]*template.AgentTemplate, 0, len(discovered))
	for _, dt := range discovered {
		t, err := loadManifest(dt.ManifestPath)
		if err != nil {
			return nil, err
		}
		seen[t.Name] = true
		templates = append(templates, t)
	}

	builtins, err := template.BuiltinTemplates()
	if err != nil {
		return nil, err
	}
	for _, t := range builtins {
		if !seen[t.Name] {
			templates = append(templates, t)
		}
	}

	return template.Load(templates)
}

// loadManifest reads, schema-validates, and parses one template manifest.
func loadManifest(path string) (*template.AgentTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template manifest %s: %w", path, err)
	}

	result, err := template.ValidateManifest(data)
	if err != nil {
		return nil, fmt.Errorf("validating template manifest %s: %w", path, err)
	}
	if !result.Valid {
		issues := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			issues = append(issues, msg)
		}
		return nil, &template.SchemaError{Template: path, Issues: issues}
	}

	return template.Parse(data)
}
