package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentforge-labs/agentforge/internal/template"
)

func TestNewData_Defaults(t *testing.T) {
	data := NewData("code-reviewer", "")
	if data.Category != string(template.CategoryCustom) {
		t.Errorf("Category = %q, want %q", data.Category, template.CategoryCustom)
	}
	if data.Version != "0.1.0" {
		t.Errorf("Version = %q, want 0.1.0", data.Version)
	}
	if !strings.Contains(data.Description, "code-reviewer") {
		t.Errorf("Description = %q, want it to mention the name", data.Description)
	}
}

func TestGenerate_ProducesValidManifest(t *testing.T) {
	dir := t.TempDir()

	result, err := Generate(NewData("code-reviewer", "coding"), dir)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if result.Path != filepath.Join(dir, "code-reviewer.yaml") {
		t.Errorf("Path = %q", result.Path)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none for the stock skeleton", result.Warnings)
	}

	// The generated manifest must survive the full load pipeline.
	tmpl, err := template.ParseFile(result.Path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if tmpl.Name != "code-reviewer" {
		t.Errorf("Name = %q", tmpl.Name)
	}
	if tmpl.Category != template.CategoryCoding {
		t.Errorf("Category = %q", tmpl.Category)
	}
	if _, err := template.Load([]*template.AgentTemplate{tmpl}); err != nil {
		t.Errorf("generated manifest fails registry load: %v", err)
	}
}

func TestGenerate_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "code-reviewer.yaml")
	if err := os.WriteFile(existing, []byte("name: code-reviewer\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Generate(NewData("code-reviewer", "coding"), dir)
	if err == nil {
		t.Fatal("expected error for existing file, got nil")
	}

	data, readErr := os.ReadFile(existing)
	if readErr != nil {
		t.Fatalf("ReadFile: %v", readErr)
	}
	if string(data) != "name: code-reviewer\n" {
		t.Error("existing file was modified")
	}
}

func TestGenerate_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "templates")

	result, err := Generate(NewData("planner", "orchestration"), dir)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := os.Stat(result.Path); err != nil {
		t.Errorf("generated file missing: %v", err)
	}
}
