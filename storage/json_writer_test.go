package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seek-trends/models"
)

func TestWriteListingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "seek_x_jobs.json")
	writer := NewJSONWriter()

	in := []*models.JobRecord{
		{
			JobID:       "1",
			Title:       "AI Engineer",
			ListingDate: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
			Location:    "Sydney NSW, Melbourne VIC",
			Employer:    "Acme",
			WorkType:    "Full time",
		},
		{
			JobID:       "2",
			Title:       "Python Engineer",
			ListingDate: time.Date(2024, 1, 4, 9, 30, 0, 0, time.UTC),
		},
	}

	if err := writer.WriteListings(path, in); err != nil {
		t.Fatal(err)
	}

	out, err := ReadListings(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("read back %d records; want 2", len(out))
	}
	if out[0].JobID != "1" || out[0].Location != "Sydney NSW, Melbourne VIC" {
		t.Errorf("record 1 mismatch: %+v", out[0])
	}
	if !out[1].ListingDate.Equal(in[1].ListingDate) {
		t.Errorf("listing date mismatch: %v != %v", out[1].ListingDate, in[1].ListingDate)
	}
}

func TestWriteListingsEmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seek_empty_jobs.json")
	if err := NewJSONWriter().WriteListings(path, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty dataset should serialize as []: %q", data)
	}
}

func TestWriteListingsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	in := []*models.JobRecord{{JobID: "1", Title: "X", ListingDate: time.Now().UTC()}}
	if err := NewJSONWriter().WriteListings(path, in); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("dataset should be written with 2-space indentation")
	}
}

func TestWriteSummaryIncludesOrderedSkills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	summary := map[string]*models.KeywordSummary{
		"ai engineer": {
			Keyword:       "ai engineer",
			TotalPostings: 3,
			WeeklyCounts:  map[string]int{"2024-01-01": 3},
			SkillFrequencies: models.SkillFrequencies{
				{Label: "python", Count: 3},
				{Label: "aws", Count: 1},
			},
		},
	}

	if err := NewJSONWriter().WriteSummary(path, summary); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	pythonAt := strings.Index(text, `"python"`)
	awsAt := strings.Index(text, `"aws"`)
	if pythonAt == -1 || awsAt == -1 {
		t.Fatalf("skill labels missing from summary: %s", text)
	}
	if pythonAt > awsAt {
		t.Error("skill frequencies must be serialized in descending-count order")
	}
}

func TestReadListingsMissingFile(t *testing.T) {
	if _, err := ReadListings(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing listing file")
	}
}

func TestReadListingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadListings(path); err == nil {
		t.Error("expected an error for a malformed listing file")
	}
}
