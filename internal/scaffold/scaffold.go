package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	tmpl "github.com/agentforge-labs/agentforge/internal/template"
)

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS

// Data holds the variables available to the manifest skeleton.
type Data struct {
	Name        string // e.g., "code-reviewer"
	Category    string // one of the template categories
	Description string
	Version     string // semver, e.g. "0.1.0"
	Year        int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Path     string
	Warnings []string
}

// NewData creates scaffold data with derived defaults populated.
func NewData(name, category string) *Data {
	if category == "" {
		category = string(tmpl.CategoryCustom)
	}
	return &Data{
		Name:        name,
		Category:    category,
		Description: fmt.Sprintf("AgentForge template: %s", name),
		Version:     "0.1.0",
		Year:        time.Now().Year(),
	}
}

// Generate writes a new template manifest <name>.yaml into outputDir and
// schema-validates the generated file. Validation problems become warnings
// so the author can fix the skeleton in place.
func Generate(data *Data, outputDir string) (*Result, error) {
	raw, err := scaffoldFS.ReadFile("scaffolds/template.yaml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading manifest skeleton: %w", err)
	}

	t, err := template.New("template.yaml").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest skeleton: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing manifest skeleton: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(outputDir, data.Name+".yaml")
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("template file already exists: %s", outPath)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	result := &Result{Path: outPath}

	valResult, valErr := tmpl.ValidateManifestFile(outPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}
