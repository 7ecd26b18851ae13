package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentforge-labs/agentforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyTemplateDirs lists extra directories scanned for template manifests.
	KeyTemplateDirs = "template_dirs"

	// KeyCachePath overrides the discovery cache location.
	KeyCachePath = "cache_path"
)

// Dir returns the path to the config directory (~/.agentforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.agentforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// TemplatesDir returns the default user template directory
// (~/.agentforge/templates).
func TemplatesDir() string {
	return filepath.Join(Dir(), "templates")
}

// CachePath returns the discovery cache file path, honoring the cache_path
// config key.
func CachePath() string {
	if v := viper.GetString(KeyCachePath); v != "" {
		return v
	}
	return filepath.Join(Dir(), "library-cache.json")
}

// TemplateDirs returns every directory to scan for template manifests: the
// default user directory plus any configured extras.
func TemplateDirs() []string {
	dirs := []string{TemplatesDir()}
	dirs = append(dirs, viper.GetStringSlice(KeyTemplateDirs)...)
	return dirs
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
