package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// DetailCache stores one markdown file per job identifier. Existence of a
// file is the cache-hit signal; entries are never re-validated, expired, or
// overwritten.
type DetailCache struct {
	dir string
}

// NewDetailCache creates the cache directory if needed and returns a cache
// rooted there.
func NewDetailCache(dir string) (*DetailCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cache: create dir %q: %w", dir, err)
	}
	return &DetailCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DetailCache) Dir() string {
	return c.dir
}

// Has reports whether a description is already cached for jobID.
func (c *DetailCache) Has(jobID string) bool {
	_, err := os.Stat(c.path(jobID))
	return err == nil
}

// Read returns the cached description text for jobID.
func (c *DetailCache) Read(jobID string) (string, error) {
	data, err := os.ReadFile(c.path(jobID))
	if err != nil {
		return "", fmt.Errorf("cache: read %s: %w", jobID, err)
	}
	return string(data), nil
}

// Write stores text for jobID unless an entry already exists. Caching is
// at-most-once per identifier for the lifetime of the cache directory.
func (c *DetailCache) Write(jobID, text string) error {
	if c.Has(jobID) {
		return nil
	}
	if err := os.WriteFile(c.path(jobID), []byte(text), 0644); err != nil {
		return fmt.Errorf("cache: write %s: %w", jobID, err)
	}
	return nil
}

func (c *DetailCache) path(jobID string) string {
	return filepath.Join(c.dir, jobID+".md")
}
