//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	UserDir    string // manifests written by the "user" source
	ProjectDir string // manifests shared through a project directory
	CachePath  string // library cache file
}

// setupTestEnv creates isolated source directories for one test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	base := t.TempDir()
	env := &testEnv{
		UserDir:    filepath.Join(base, "user-templates"),
		ProjectDir: filepath.Join(base, "project-templates"),
		CachePath:  filepath.Join(base, "cache", "library-cache.json"),
	}
	for _, dir := range []string{env.UserDir, env.ProjectDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", dir, err)
		}
	}
	return env
}

// writeManifest drops a manifest into dir and returns its path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
}
