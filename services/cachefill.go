package services

import (
	"fmt"
	"time"

	"seek-trends/config"
	"seek-trends/models"
	"seek-trends/storage"
	"seek-trends/utils"
)

// DescriptionFetcher fetches the raw description text for one job identifier.
type DescriptionFetcher interface {
	FetchDescription(jobID string) (string, error)
}

// CacheFiller populates the description cache for a set of listings, skipping
// identifiers that already have a cache file. Per-identifier failures are
// non-fatal; uncached identifiers are picked up again on the next run.
type CacheFiller struct {
	cfg    *config.Config
	logger *utils.Logger
	cache  storage.DescriptionCache
	fetch  DescriptionFetcher
	retry  *utils.RetryConfig
}

// NewCacheFiller creates a CacheFiller with the configured retry policy.
func NewCacheFiller(cfg *config.Config, logger *utils.Logger, cache storage.DescriptionCache, fetcher DescriptionFetcher) *CacheFiller {
	return &CacheFiller{
		cfg:    cfg,
		logger: logger,
		cache:  cache,
		fetch:  fetcher,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxAttempts,
			Backoff:     time.Duration(cfg.BackoffSeconds) * time.Second,
			Logger:      logger,
		},
	}
}

// Fill ensures every record has a cached description file.
func (f *CacheFiller) Fill(records []*models.JobRecord) {
	remaining := 0
	for _, rec := range records {
		if !f.cache.Has(rec.JobID) {
			remaining++
		}
	}
	f.logger.Info("[cache] %d job descriptions to fetch", remaining)

	cached := 0
	for idx, rec := range records {
		if f.cache.Has(rec.JobID) {
			continue
		}

		var text string
		err := f.retry.Do(fmt.Sprintf("fetch-detail-%s", rec.JobID), func() error {
			var ferr error
			text, ferr = f.fetch.FetchDescription(rec.JobID)
			return ferr
		})
		if err != nil {
			f.logger.Warn("[cache] [%d/%d] %s left uncached: %v", idx+1, len(records), rec.JobID, err)
			continue
		}

		if err := f.cache.Write(rec.JobID, text); err != nil {
			f.logger.Error("[cache] [%d/%d] %v", idx+1, len(records), err)
			continue
		}

		cached++
		if cached%20 == 0 {
			f.logger.Info("[cache] [%d/%d] cached %s", idx+1, len(records), rec.JobID)
		}
		time.Sleep(time.Duration(f.cfg.DetailDelayMs) * time.Millisecond)
	}

	f.logger.Info("[cache] done — %d newly cached, %d still missing", cached, remaining-cached)
}
