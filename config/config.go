package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// The session cookie blob is an opaque credential supplied out of band; it is
// never generated or inspected here.
type Config struct {
	Keywords []string

	MaxAgeDays        int
	MaxPages          int
	PageDelayMs       int
	DetailDelayMs     int
	LazyDetailDelayMs int

	MaxAttempts      int
	BackoffSeconds   int
	SearchTimeoutSec int
	DetailTimeoutSec int

	DataDir          string
	DetailCacheDir   string
	CollectSkills    bool
	CacheFillKeyword string

	SearchURL      string
	DetailProxyURL string
	CookieBlob     string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Keywords: splitKeywords(getEnv("KEYWORDS", "ai engineer,python engineer")),

		MaxAgeDays:        getEnvInt("MAX_AGE_DAYS", 90),
		MaxPages:          getEnvInt("MAX_PAGES", 160),
		PageDelayMs:       getEnvInt("PAGE_DELAY_MS", 350),
		DetailDelayMs:     getEnvInt("DETAIL_DELAY_MS", 600),
		LazyDetailDelayMs: getEnvInt("LAZY_DETAIL_DELAY_MS", 200),

		MaxAttempts:      getEnvInt("MAX_ATTEMPTS", 4),
		BackoffSeconds:   getEnvInt("BACKOFF_SECONDS", 30),
		SearchTimeoutSec: getEnvInt("SEARCH_TIMEOUT_SEC", 30),
		DetailTimeoutSec: getEnvInt("DETAIL_TIMEOUT_SEC", 25),

		DataDir:          getEnv("DATA_DIR", "./data"),
		DetailCacheDir:   getEnv("DETAIL_CACHE_DIR", "./data/job_details"),
		CollectSkills:    getEnvBool("COLLECT_SKILLS", false),
		CacheFillKeyword: getEnv("CACHE_FILL_KEYWORD", "ai engineer"),

		SearchURL:      getEnv("SEEK_SEARCH_URL", "https://www.seek.com.au/api/jobsearch/v5/search"),
		DetailProxyURL: getEnv("SEEK_DETAIL_PROXY", "https://r.jina.ai/https://www.seek.com.au/job/"),
		CookieBlob:     getEnv("SEEK_COOKIE", ""),
	}
}

// ListingPath returns the dataset path for one keyword's listings.
func (c *Config) ListingPath(keyword string) string {
	slug := strings.ReplaceAll(keyword, " ", "_")
	return filepath.Join(c.DataDir, "seek_"+slug+"_jobs.json")
}

// SummaryPath returns the path of the per-run analysis summary.
func (c *Config) SummaryPath() string {
	return filepath.Join(c.DataDir, "seek_job_summary.json")
}

// SkillsPath returns the path of the standalone skill-frequency artifact.
func (c *Config) SkillsPath() string {
	return filepath.Join(c.DataDir, "seek_ai_skills.json")
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
