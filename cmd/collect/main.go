package main

import (
	"encoding/json"
	"fmt"
	"os"

	"seek-trends/config"
	"seek-trends/models"
	"seek-trends/scraper/seek"
	"seek-trends/services"
	"seek-trends/storage"
	"seek-trends/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Seek job trends collector starting ===")
	logger.Info("Config — keywords: %v | max age: %dd | max pages: %d | skills: %v",
		cfg.Keywords, cfg.MaxAgeDays, cfg.MaxPages, cfg.CollectSkills)

	if cfg.CookieBlob == "" {
		logger.Warn("SEEK_COOKIE is empty — the search API will likely reject requests")
	}

	cache, err := storage.NewDetailCache(cfg.DetailCacheDir)
	if err != nil {
		logger.Error("Failed to create detail cache: %v", err)
		os.Exit(1)
	}

	client := seek.New(cfg, logger)
	writer := storage.NewJSONWriter()
	analyzer := services.NewAnalyzer(cfg, logger, cache, client, services.DefaultLexicon())

	summary := make(map[string]*models.KeywordSummary, len(cfg.Keywords))
	for _, keyword := range cfg.Keywords {
		logger.Info("[collect] fetching listings for keyword: %q", keyword)

		records, err := client.FetchJobs(keyword)
		if err != nil {
			logger.Error("[collect] keyword %q failed: %v", keyword, err)
			continue
		}
		logger.Info("[collect] collected %d recent postings", len(records))

		path := cfg.ListingPath(keyword)
		if err := writer.WriteListings(path, records); err != nil {
			logger.Error("[collect] %v", err)
			continue
		}
		logger.Info("[collect] dataset saved to %s", path)

		entry := analyzer.Summarize(keyword, records)
		if len(entry.SkillFrequencies) > 0 {
			if err := writer.WriteSkills(cfg.SkillsPath(), entry.SkillFrequencies); err != nil {
				logger.Error("[collect] %v", err)
			}
		}
		summary[keyword] = entry
	}

	if err := writer.WriteSummary(cfg.SummaryPath(), summary); err != nil {
		logger.Error("[collect] %v", err)
		os.Exit(1)
	}
	logger.Info("[collect] summary written to %s", cfg.SummaryPath())

	analyzer.Print(summary)

	out, err := json.MarshalIndent(summary, "", "  ")
	if err == nil {
		fmt.Println(string(out))
	}
}
