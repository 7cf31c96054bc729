package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seek-trends/models"
)

// JSONWriter persists listing datasets and analysis artifacts as
// human-readable JSON (2-space indent). Intermediate directories are created
// automatically.
type JSONWriter struct{}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// WriteListings writes one keyword's collected records as a JSON array.
func (w *JSONWriter) WriteListings(path string, records []*models.JobRecord) error {
	if records == nil {
		records = []*models.JobRecord{}
	}
	return w.writeJSON(path, records)
}

// WriteSummary writes the per-run keyword summary mapping.
func (w *JSONWriter) WriteSummary(path string, summary map[string]*models.KeywordSummary) error {
	return w.writeJSON(path, summary)
}

// WriteSkills writes the standalone skill-frequency artifact.
func (w *JSONWriter) WriteSkills(path string, skills models.SkillFrequencies) error {
	return w.writeJSON(path, skills)
}

func (w *JSONWriter) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("json: create output dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: marshal %q: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", path, err)
	}
	return nil
}

// ReadListings loads a previously written listing dataset. A missing or
// malformed file is an error; the cache filler treats it as fatal.
func ReadListings(path string) ([]*models.JobRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json: read %q: %w", path, err)
	}

	var records []*models.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json: parse %q: %w", path, err)
	}
	return records, nil
}
