//go:build integration

package integration_test

import (
	"strings"
	"testing"

	"github.com/agentforge-labs/agentforge/internal/instantiate"
	"github.com/agentforge-labs/agentforge/internal/library"
	"github.com/agentforge-labs/agentforge/internal/scaffold"
	"github.com/agentforge-labs/agentforge/internal/template"
)

const triageManifest = `name: triage
category: orchestration
version: 1.2.0
description: Routes incoming work to the right specialist
capabilities:
  - name: routing
    description: Route a request to a specialist queue
    required_tools: [queue_write]
  - name: escalation
    description: Escalate urgent requests
    required_tools: [queue_write, pager]
    required_permissions: [page_oncall]
base_prompt_template: |
  You are a triage agent for {team} work.
  You route each request with {urgency} urgency handling.
default_tools: [queue_write]
personality_traits:
  - Decisive
specialization_options:
  team: [platform, product]
  urgency: [strict, relaxed]
`

// TestFullFlowDiscoverAndInstantiate runs the complete pipeline:
// scaffold a manifest -> discover sources -> load registry -> instantiate.
func TestFullFlowDiscoverAndInstantiate(t *testing.T) {
	env := setupTestEnv(t)

	// Step 1: Scaffold a fresh manifest into the user source.
	result, err := scaffold.Generate(scaffold.NewData("helper", "general"), env.UserDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertFileExists(t, result.Path)
	if len(result.Warnings) != 0 {
		t.Fatalf("scaffold warnings: %v", result.Warnings)
	}

	// Step 2: Add a hand-written manifest to the project source.
	writeManifest(t, env.ProjectDir, "triage.yaml", triageManifest)

	sources := []library.Source{
		{Name: "user", BasePath: env.UserDir},
		{Name: "project", BasePath: env.ProjectDir},
	}

	// Step 3: Discovery (cached) sees both manifests.
	discovered, err := library.DiscoverAllCached(sources, env.CachePath)
	if err != nil {
		t.Fatalf("DiscoverAllCached: %v", err)
	}
	if len(discovered) != 2 {
		t.Fatalf("discovered %d templates, want 2: %+v", len(discovered), discovered)
	}
	assertFileExists(t, env.CachePath)

	// Step 4: The registry snapshot merges sources over the builtins.
	reg, err := library.LoadSources(sources)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	for _, name := range []string{"helper", "triage", "developer", "researcher"} {
		if _, err := reg.Lookup(name); err != nil {
			t.Errorf("Lookup(%s): %v", name, err)
		}
	}

	// Step 5: Instantiate the hand-written template end to end.
	cfg, err := instantiate.Instantiate(reg, instantiate.Request{
		TemplateName:       "triage",
		Capabilities:       []string{"escalation"},
		Specialization:     map[string]string{"team": "platform", "urgency": "strict"},
		AvailableTools:     []string{"queue_write", "pager"},
		GrantedPermissions: []string{"page_oncall"},
	})
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if !strings.Contains(cfg.RenderedPrompt, "platform work") {
		t.Errorf("prompt missing team substitution:\n%s", cfg.RenderedPrompt)
	}
	if len(cfg.EffectiveTools) != 2 {
		t.Errorf("EffectiveTools = %v, want [pager queue_write]", cfg.EffectiveTools)
	}
	if len(cfg.EffectivePermissions) != 1 || cfg.EffectivePermissions[0] != "page_oncall" {
		t.Errorf("EffectivePermissions = %v", cfg.EffectivePermissions)
	}
}

// TestHotReloadSwapsSnapshot covers the store-based reload flow: agents
// created before a reload keep their config, new lookups see the new set.
func TestHotReloadSwapsSnapshot(t *testing.T) {
	env := setupTestEnv(t)
	writeManifest(t, env.ProjectDir, "triage.yaml", triageManifest)
	sources := []library.Source{{Name: "project", BasePath: env.ProjectDir}}

	first, err := library.LoadSources(sources)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	store := template.NewStore(first)

	cfg, err := instantiate.Instantiate(store.Current(), instantiate.Request{
		TemplateName:       "triage",
		Capabilities:       []string{"routing"},
		Specialization:     map[string]string{"team": "product", "urgency": "relaxed"},
		AvailableTools:     []string{"queue_write"},
		GrantedPermissions: nil,
	})
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	// Reload with the triage manifest gone: only builtins remain.
	second, err := library.LoadSources(nil)
	if err != nil {
		t.Fatalf("LoadSources (reload): %v", err)
	}
	store.Reload(second)

	if _, err := store.Current().Lookup("triage"); err == nil {
		t.Error("triage still visible after reload without its source")
	}
	if cfg.TemplateName != "triage" || cfg.RenderedPrompt == "" {
		t.Error("existing agent config affected by reload")
	}
}
