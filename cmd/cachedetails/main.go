package main

import (
	"os"

	"seek-trends/config"
	"seek-trends/scraper/seek"
	"seek-trends/services"
	"seek-trends/storage"
	"seek-trends/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Seek description cache filler starting ===")

	path := cfg.ListingPath(cfg.CacheFillKeyword)
	records, err := storage.ReadListings(path)
	if err != nil {
		logger.Error("Listing file for %q not usable: %v", cfg.CacheFillKeyword, err)
		logger.Error("Run the collector once first (cmd/collect).")
		os.Exit(1)
	}
	logger.Info("Loaded %d listings from %s", len(records), path)

	cache, err := storage.NewDetailCache(cfg.DetailCacheDir)
	if err != nil {
		logger.Error("Failed to create detail cache: %v", err)
		os.Exit(1)
	}

	client := seek.New(cfg, logger)
	filler := services.NewCacheFiller(cfg, logger, cache, client)
	filler.Fill(records)
}
