package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seek-trends/config"
	"seek-trends/models"
	"seek-trends/storage"
	"seek-trends/utils"
)

type fakeFetcher struct {
	calls map[string]int
	fail  map[string]error
	text  string
}

func newFakeFetcher(text string) *fakeFetcher {
	return &fakeFetcher{
		calls: make(map[string]int),
		fail:  make(map[string]error),
		text:  text,
	}
}

func (f *fakeFetcher) FetchDescription(jobID string) (string, error) {
	f.calls[jobID]++
	if err, ok := f.fail[jobID]; ok {
		return "", err
	}
	return f.text, nil
}

func testFillerConfig() *config.Config {
	return &config.Config{
		MaxAttempts:    3,
		BackoffSeconds: 0,
		DetailDelayMs:  0,
	}
}

func records(ids ...string) []*models.JobRecord {
	out := make([]*models.JobRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.JobRecord{JobID: id})
	}
	return out
}

func TestCacheFillerSkipsCachedIdentifiers(t *testing.T) {
	dir := t.TempDir()
	cache, err := storage.NewDetailCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	// pre-seed one cache file
	if err := os.WriteFile(filepath.Join(dir, "123.md"), []byte("cached text"), 0644); err != nil {
		t.Fatal(err)
	}

	fetcher := newFakeFetcher("fresh text")
	filler := NewCacheFiller(testFillerConfig(), utils.NewLogger(), cache, fetcher)
	filler.Fill(records("123", "456"))

	if fetcher.calls["123"] != 0 {
		t.Errorf("cached identifier 123 was fetched %d times; want 0", fetcher.calls["123"])
	}
	if fetcher.calls["456"] != 1 {
		t.Errorf("identifier 456 fetched %d times; want 1", fetcher.calls["456"])
	}
	if !cache.Has("456") {
		t.Error("identifier 456 should be cached after Fill")
	}
}

func TestCacheFillerIdempotent(t *testing.T) {
	cache, err := storage.NewDetailCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fetcher := newFakeFetcher("body")
	filler := NewCacheFiller(testFillerConfig(), utils.NewLogger(), cache, fetcher)

	ids := records("1", "2", "3")
	filler.Fill(ids)
	filler.Fill(ids)

	for _, rec := range ids {
		if fetcher.calls[rec.JobID] != 1 {
			t.Errorf("identifier %s fetched %d times across two runs; want 1", rec.JobID, fetcher.calls[rec.JobID])
		}
	}

	text, err := cache.Read("1")
	if err != nil {
		t.Fatal(err)
	}
	if text != "body" {
		t.Errorf("cache content changed on second run: %q", text)
	}
}

func TestCacheFillerRetriesTransportErrors(t *testing.T) {
	cache, err := storage.NewDetailCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fetcher := newFakeFetcher("body")
	fetcher.fail["9"] = errors.New("connection reset")

	filler := NewCacheFiller(testFillerConfig(), utils.NewLogger(), cache, fetcher)
	filler.Fill(records("9"))

	if fetcher.calls["9"] != 3 {
		t.Errorf("transport failure retried %d times; want 3 (MaxAttempts)", fetcher.calls["9"])
	}
	if cache.Has("9") {
		t.Error("failed identifier must stay uncached")
	}
}

func TestCacheFillerPermanentFailureNotRetried(t *testing.T) {
	cache, err := storage.NewDetailCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fetcher := newFakeFetcher("body")
	fetcher.fail["7"] = utils.Permanent(errors.New("unexpected status 404"))

	filler := NewCacheFiller(testFillerConfig(), utils.NewLogger(), cache, fetcher)
	filler.Fill(records("7", "8"))

	if fetcher.calls["7"] != 1 {
		t.Errorf("permanent failure retried %d times; want 1", fetcher.calls["7"])
	}
	if !cache.Has("8") {
		t.Error("a permanent failure on one identifier must not block the next one")
	}
}
