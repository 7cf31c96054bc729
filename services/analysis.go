package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"seek-trends/config"
	"seek-trends/models"
	"seek-trends/storage"
	"seek-trends/utils"
)

// Analyzer derives per-keyword trend summaries from collected listings and
// the description cache.
type Analyzer struct {
	cfg    *config.Config
	logger *utils.Logger
	cache  storage.DescriptionCache
	fetch  DescriptionFetcher
	lex    Lexicon
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(cfg *config.Config, logger *utils.Logger, cache storage.DescriptionCache, fetcher DescriptionFetcher, lex Lexicon) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		logger: logger,
		cache:  cache,
		fetch:  fetcher,
		lex:    lex,
	}
}

// QualifiesForSkills reports whether a keyword's listings get skill
// enrichment. Only AI-focused queries are enriched.
func QualifiesForSkills(keyword string) bool {
	return strings.Contains(strings.ToLower(keyword), "ai")
}

// Summarize builds the summary entry for one keyword's records. When skill
// collection is enabled and the keyword qualifies, descriptions are attached
// from the cache (lazily fetching anything missing) and skill frequencies
// are computed over the corpus.
func (a *Analyzer) Summarize(keyword string, records []*models.JobRecord) *models.KeywordSummary {
	summary := &models.KeywordSummary{
		Keyword:       keyword,
		TotalPostings: len(records),
		WeeklyCounts:  WeeklyCounts(records),
	}

	if a.cfg.CollectSkills && QualifiesForSkills(keyword) && len(records) > 0 {
		a.logger.Info("[analysis] loading job descriptions for skill analysis (%s)...", keyword)
		a.loadDescriptions(records)
		summary.SkillFrequencies = ComputeSkillFrequencies(a.lex, records)
	}

	return summary
}

// loadDescriptions attaches description text to each record, reading from the
// cache and fetching (then caching) anything missing. Fetch failures leave
// the record without a description; it simply does not contribute to skill
// counts this run.
func (a *Analyzer) loadDescriptions(records []*models.JobRecord) {
	for _, rec := range records {
		if a.cache.Has(rec.JobID) {
			text, err := a.cache.Read(rec.JobID)
			if err != nil {
				a.logger.Warn("[analysis] %v", err)
				continue
			}
			rec.Description = text
			continue
		}

		text, err := a.fetch.FetchDescription(rec.JobID)
		if err != nil {
			a.logger.Debug("[analysis] %s: no description (%v)", rec.JobID, err)
		} else {
			rec.Description = text
			if werr := a.cache.Write(rec.JobID, text); werr != nil {
				a.logger.Warn("[analysis] %v", werr)
			}
		}
		time.Sleep(time.Duration(a.cfg.LazyDetailDelayMs) * time.Millisecond)
	}
}

// Print renders the run summary as a terminal report.
func (a *Analyzer) Print(summary map[string]*models.KeywordSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📈 SEEK JOB MARKET TRENDS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n", sep)

	keywords := make([]string, 0, len(summary))
	for kw := range summary {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	for _, kw := range keywords {
		entry := summary[kw]

		fmt.Printf("\n\033[1;33m  %s\033[0m\n", kw)
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Total postings : \033[1m%d\033[0m\n", entry.TotalPostings)

		if len(entry.WeeklyCounts) > 0 {
			weeks := make([]string, 0, len(entry.WeeklyCounts))
			maxCount := 0
			for week, count := range entry.WeeklyCounts {
				weeks = append(weeks, week)
				if count > maxCount {
					maxCount = count
				}
			}
			sort.Strings(weeks)

			fmt.Printf("\n  Postings per week\n")
			for _, week := range weeks {
				count := entry.WeeklyCounts[week]
				fmt.Printf("  %s %s (%d)\n", week, bar(count, maxCount), count)
			}
		}

		if len(entry.SkillFrequencies) > 0 {
			top := entry.SkillFrequencies
			if len(top) > 10 {
				top = top[:10]
			}
			fmt.Printf("\n  Top skills mentioned\n")
			for i, sc := range top {
				fmt.Printf("  \033[1m%2d.\033[0m %-24s \033[1;32m%d\033[0m\n",
					i+1, truncate(sc.Label, 22), sc.Count)
			}
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// bar scales count against the largest bucket so wide runs still fit a
// terminal row.
func bar(count, maxCount int) string {
	const width = 40
	n := count
	if maxCount > width {
		n = count * width / maxCount
		if n == 0 && count > 0 {
			n = 1
		}
	}
	return strings.Repeat("█", n)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
