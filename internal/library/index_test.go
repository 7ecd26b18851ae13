package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsCacheValid_NilCache(t *testing.T) {
	if isCacheValid(nil, []Source{{Name: "user", BasePath: t.TempDir()}}) {
		t.Error("nil cache reported valid")
	}
}

func TestIsCacheValid_SourceCountMismatch(t *testing.T) {
	dir := t.TempDir()
	cached := &CachedIndex{
		SourceMods: map[string]int64{"user": latestMtime(dir)},
		CachedAt:   time.Now(),
	}
	sources := []Source{
		{Name: "user", BasePath: dir},
		{Name: "project", BasePath: t.TempDir()},
	}
	if isCacheValid(cached, sources) {
		t.Error("cache with fewer sources reported valid")
	}
}

func TestIsCacheValid_MatchingMtimes(t *testing.T) {
	dir := t.TempDir()
	cached := &CachedIndex{
		SourceMods: map[string]int64{"user": latestMtime(dir)},
		CachedAt:   time.Now(),
	}
	if !isCacheValid(cached, []Source{{Name: "user", BasePath: dir}}) {
		t.Error("cache with matching mtimes reported invalid")
	}
}

func TestIsCacheValid_StaleMtime(t *testing.T) {
	dir := t.TempDir()
	cached := &CachedIndex{
		SourceMods: map[string]int64{"user": latestMtime(dir) - 60},
		CachedAt:   time.Now(),
	}
	if isCacheValid(cached, []Source{{Name: "user", BasePath: dir}}) {
		t.Error("cache with stale mtime reported valid")
	}
}

func TestIsCacheValid_InPlaceFileEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "planner.yaml", plannerManifest)

	cached := &CachedIndex{
		SourceMods: map[string]int64{"user": latestMtime(dir)},
		CachedAt:   time.Now(),
	}
	sources := []Source{{Name: "user", BasePath: dir}}
	if !isCacheValid(cached, sources) {
		t.Fatal("fresh cache reported invalid")
	}

	// An in-place edit bumps the file's mtime but not the directory's.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
	if isCacheValid(cached, sources) {
		t.Error("cache still valid after a manifest was edited in place")
	}
}

func TestDiscoverAllCached_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "planner.yaml", plannerManifest)
	cachePath := filepath.Join(t.TempDir(), "cache", "library-cache.json")
	sources := []Source{{Name: "user", BasePath: dir}}

	first, err := DiscoverAllCached(sources, cachePath)
	if err != nil {
		t.Fatalf("DiscoverAllCached error: %v", err)
	}
	if len(first) != 1 || first[0].Name != "planner" {
		t.Fatalf("first discovery = %+v", first)
	}

	idx, err := loadCache(cachePath)
	if err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	if len(idx.Templates) != 1 {
		t.Errorf("cached templates = %+v", idx.Templates)
	}

	second, err := DiscoverAllCached(sources, cachePath)
	if err != nil {
		t.Fatalf("DiscoverAllCached (cached) error: %v", err)
	}
	if len(second) != 1 || second[0].Name != "planner" {
		t.Errorf("second discovery = %+v", second)
	}
}

func TestDiscoverAllCached_MissingCacheFile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "planner.yaml", plannerManifest)

	found, err := DiscoverAllCached(
		[]Source{{Name: "user", BasePath: dir}},
		filepath.Join(t.TempDir(), "no-such-cache.json"),
	)
	if err != nil {
		t.Fatalf("DiscoverAllCached error: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("found = %+v, want 1 template", found)
	}
}
