package library

// Source represents a directory to search for template manifests
// (e.g., a project-local templates dir or ~/.agentforge/templates).
type Source struct {
	Name     string // e.g., "user", "project"
	BasePath string // absolute path to the directory
}

// DiscoveredTemplate is a template manifest found in a source, enriched
// with metadata read from the manifest itself.
type DiscoveredTemplate struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Version      string `json:"version"`
	Description  string `json:"description"`
	ManifestPath string `json:"manifest_path"`
	SourceName   string `json:"source_name"`
}
