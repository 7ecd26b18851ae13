package cli

import (
	"github.com/agentforge-labs/agentforge/internal/branding"
	"github.com/agentforge-labs/agentforge/internal/config"
	"github.com/agentforge-labs/agentforge/internal/library"
	"github.com/agentforge-labs/agentforge/internal/template"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is a registry of declarative agent templates and the engine
that resolves a template plus a specialization choice into a validated,
immutable agent configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// templateSources returns the configured template source directories in
// priority order.
func templateSources() []library.Source {
	var sources []library.Source
	for i, dir := range config.TemplateDirs() {
		name := "user"
		if i > 0 {
			name = dir
		}
		sources = append(sources, library.Source{Name: name, BasePath: dir})
	}
	return sources
}

// loadRegistry builds the registry snapshot the commands operate on:
// configured sources merged over the embedded builtins, with discovery
// served from the cache file when the sources are unchanged.
func loadRegistry() (*template.Registry, error) {
	return library.LoadSourcesCached(templateSources(), config.CachePath())
}
