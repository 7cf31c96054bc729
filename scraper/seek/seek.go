package seek

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"seek-trends/config"
	"seek-trends/models"
	"seek-trends/utils"
)

// Fixed header set the search API expects. The session cookie is supplied
// separately via config and attached verbatim.
var baseHeaders = map[string]string{
	"accept":               "application/json, text/plain, */*",
	"accept-language":      "en,zh-CN;q=0.9,zh;q=0.8,en-GB;q=0.7,en-US;q=0.6,en-AU;q=0.5",
	"priority":             "u=1, i",
	"referer":              "https://www.seek.com.au/",
	"sec-ch-ua":            `"Microsoft Edge";v="141", "Not?A_Brand";v="8", "Chromium";v="141"`,
	"sec-ch-ua-mobile":     "?0",
	"sec-ch-ua-platform":   `"Windows"`,
	"sec-fetch-dest":       "empty",
	"sec-fetch-mode":       "cors",
	"sec-fetch-site":       "same-origin",
	"seek-request-brand":   "seek",
	"seek-request-country": "AU",
	"user-agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36 Edg/141.0.0.0",
	"x-seek-checksum": "12fc8013",
	"x-seek-site":     "Chalice",
}

var baseParams = map[string]string{
	"siteKey":               "AU-Main",
	"sourcesystem":          "houston",
	"eventCaptureSessionId": "03b3ca4e-fa0f-4cf7-b0b9-b8d04f158943",
	"userid":                "03b3ca4e-fa0f-4cf7-b0b9-b8d04f158943",
	"userqueryid":           "f8ad2e296a57371f161829581cd83dab-8317736",
	"usersessionid":         "03b3ca4e-fa0f-4cf7-b0b9-b8d04f158943",
	"where":                 "All Australia",
	"pageSize":              "22",
	"include":               "seodata,gptTargeting,relatedsearches,asyncpills",
	"locale":                "en-AU",
	"solId":                 "b1ba265d-20ea-4c20-954e-b8d1e95f5c00",
	"source":                "FE_JDV",
	"relatedSearchesCount":  "12",
	"queryHints":            "spellingCorrection",
	"facets":                "salaryMin,workArrangement,workType",
	"sortmode":              "ListedDate",
}

type searchResponse struct {
	Data []rawJob `json:"data"`
}

// jobID tolerates both string and numeric identifiers in the search payload.
type jobID string

func (id *jobID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*id = jobID(s)
	return nil
}

type rawJob struct {
	ID          jobID  `json:"id"`
	Title       string `json:"title"`
	ListingDate string `json:"listingDate"`
	Locations   []struct {
		Label string `json:"label"`
	} `json:"locations"`
	WorkTypes   []string `json:"workTypes"`
	CompanyName string   `json:"companyName"`
	Advertiser  struct {
		Description string `json:"description"`
	} `json:"advertiser"`
}

// Client talks to the Seek search API and the markdown detail proxy.
type Client struct {
	cfg    *config.Config
	logger *utils.Logger
	search *resty.Client
	detail *resty.Client
}

// New creates a ready-to-use Client. The search client carries the fixed
// header set plus the opaque session cookie blob; the detail client is plain.
func New(cfg *config.Config, logger *utils.Logger) *Client {
	search := resty.New().
		SetHeaders(baseHeaders).
		SetTimeout(time.Duration(cfg.SearchTimeoutSec) * time.Second)
	if cfg.CookieBlob != "" {
		search.SetHeader("cookie", cfg.CookieBlob)
	}

	detail := resty.New().
		SetTimeout(time.Duration(cfg.DetailTimeoutSec) * time.Second)

	return &Client{
		cfg:    cfg,
		logger: logger,
		search: search,
		detail: detail,
	}
}

// FetchJobs paginates the search endpoint for one keyword and returns
// deduplicated records in server order (latest listed first). Pagination
// stops on an empty page, the page limit, or the first listing older than
// the age cutoff; the sort order is ListedDate, so no later page can hold
// newer items once the cutoff is reached.
func (c *Client) FetchJobs(keyword string) ([]*models.JobRecord, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -c.cfg.MaxAgeDays)
	seen := utils.NewIDSet()
	var results []*models.JobRecord

	reachedCutoff := false
	for page := 1; page <= c.cfg.MaxPages && !reachedCutoff; page++ {
		jobs, err := c.fetchPage(keyword, page)
		if err != nil {
			return nil, err
		}
		if len(jobs) == 0 {
			c.logger.Debug("[seek] page %d empty — no more results", page)
			break
		}

		for _, job := range jobs {
			id := string(job.ID)
			if id == "" || seen.Contains(id) {
				continue
			}
			if job.ListingDate == "" {
				continue
			}
			listed, err := time.Parse(time.RFC3339, job.ListingDate)
			if err != nil {
				c.logger.Debug("[seek] %s: unparseable listingDate %q — skipped", id, job.ListingDate)
				continue
			}
			if listed.Before(cutoff) {
				reachedCutoff = true
				break
			}

			seen.Add(id)
			results = append(results, &models.JobRecord{
				JobID:       id,
				Title:       job.Title,
				ListingDate: listed.UTC(),
				Location:    joinLocations(job),
				Employer:    employer(job),
				WorkType:    strings.Join(job.WorkTypes, ", "),
			})
		}

		if !reachedCutoff {
			time.Sleep(time.Duration(c.cfg.PageDelayMs) * time.Millisecond)
		}
	}

	return results, nil
}

func (c *Client) fetchPage(keyword string, page int) ([]rawJob, error) {
	params := make(map[string]string, len(baseParams)+2)
	for k, v := range baseParams {
		params[k] = v
	}
	params["keywords"] = keyword
	params["page"] = strconv.Itoa(page)

	var payload searchResponse
	resp, err := c.search.R().
		SetQueryParams(params).
		SetResult(&payload).
		Get(c.cfg.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("seek: search page %d for %q: %w", page, keyword, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("seek: search page %d for %q: unexpected status %d",
			page, keyword, resp.StatusCode())
	}
	return payload.Data, nil
}

func joinLocations(job rawJob) string {
	labels := make([]string, 0, len(job.Locations))
	for _, loc := range job.Locations {
		if loc.Label != "" {
			labels = append(labels, loc.Label)
		}
	}
	return strings.Join(labels, ", ")
}

func employer(job rawJob) string {
	if job.CompanyName != "" {
		return job.CompanyName
	}
	return job.Advertiser.Description
}
