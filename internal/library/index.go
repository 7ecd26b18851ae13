package library

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// CachedIndex holds a cached set of discovered templates along with source
// modification times used for invalidation.
type CachedIndex struct {
	Templates  []DiscoveredTemplate `json:"templates"`
	SourceMods map[string]int64     `json:"source_mods"` // source name -> mtime unix
	CachedAt   time.Time            `json:"cached_at"`
}

// DiscoverAllCached returns discovered templates, using the cache file when
// it is still valid. On a miss it rebuilds from the sources and rewrites the
// cache (best effort — discovery works without caching).
func DiscoverAllCached(sources []Source, cachePath string) ([]DiscoveredTemplate, error) {
	cached, err := loadCache(cachePath)
	if err == nil && isCacheValid(cached, sources) {
		slog.Debug("using cached template index", "path", cachePath, "templates", len(cached.Templates))
		return cached.Templates, nil
	}

	slog.Debug("rebuilding template index", "path", cachePath, "sources", len(sources))
	templates, err := DiscoverAll(sources)
	if err != nil {
		return nil, err
	}

	writeCache(cachePath, templates, sources)
	return templates, nil
}

// loadCache reads and parses the cache file.
func loadCache(path string) (*CachedIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var idx CachedIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

// isCacheValid checks whether the cached source mtimes still match the
// directories on disk. Any change (or missing source) invalidates.
func isCacheValid(cached *CachedIndex, sources []Source) bool {
	if cached == nil || len(cached.SourceMods) != len(sources) {
		return false
	}
	for _, src := range sources {
		cachedMtime, ok := cached.SourceMods[src.Name]
		if !ok || latestMtime(src.BasePath) != cachedMtime {
			return false
		}
	}
	return true
}

// latestMtime returns the latest modification time (unix seconds) across a
// source directory tree. Directory mtimes catch added or removed manifests;
// file mtimes catch in-place edits, which do not touch the parent directory.
func latestMtime(basePath string) int64 {
	var latest int64
	if info, err := os.Stat(basePath); err == nil {
		latest = info.ModTime().Unix()
	} else {
		return 0
	}

	filepath.WalkDir(basePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			if t := fi.ModTime().Unix(); t > latest {
				latest = t
			}
		}
		return nil
	})
	return latest
}

// writeCache serializes the discovered templates and source mtimes to disk.
func writeCache(path string, templates []DiscoveredTemplate, sources []Source) {
	mods := make(map[string]int64, len(sources))
	for _, src := range sources {
		mods[src.Name] = latestMtime(src.BasePath)
	}

	idx := CachedIndex{
		Templates:  templates,
		SourceMods: mods,
		CachedAt:   time.Now(),
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return
	}

	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, data, 0644)
}
