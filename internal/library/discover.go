package library

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentforge-labs/agentforge/internal/template"
)

// DiscoverAll walks every source directory and returns the template
// manifests found, enriched with manifest metadata. Templates found in
// earlier sources take priority: a later manifest with an already-seen name
// is skipped.
func DiscoverAll(sources []Source) ([]DiscoveredTemplate, error) {
	seen := make(map[string]bool)
	var result []DiscoveredTemplate

	for _, src := range sources {
		found, err := walkSource(src)
		if err != nil {
			slog.Debug("skipping template source", "source", src.Name, "path", src.BasePath, "error", err)
			continue
		}
		for _, dt := range found {
			if seen[dt.Name] {
				slog.Debug("template shadowed by earlier source", "template", dt.Name, "source", src.Name)
				continue
			}
			seen[dt.Name] = true
			result = append(result, dt)
		}
	}

	return result, nil
}

// walkSource finds all parseable template manifests under one source
// directory. Files that do not parse as a template (or have no name) are
// skipped; a broken manifest is a validation concern, not a discovery one.
func walkSource(src Source) ([]DiscoveredTemplate, error) {
	if _, err := os.Stat(src.BasePath); err != nil {
		return nil, err
	}

	var result []DiscoveredTemplate
	err := filepath.WalkDir(src.BasePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() || !isManifestFile(d.Name()) {
			return nil
		}

		t, err := template.ParseFile(path)
		if err != nil || t.Name == "" {
			slog.Debug("skipping non-template file", "path", path)
			return nil
		}

		result = append(result, DiscoveredTemplate{
			Name:         t.Name,
			Category:     string(t.Category),
			Version:      t.Version,
			Description:  t.Description,
			ManifestPath: path,
			SourceName:   src.Name,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// isManifestFile reports whether a filename looks like a template manifest.
func isManifestFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
