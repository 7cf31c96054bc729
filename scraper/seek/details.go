package seek

import (
	"fmt"
	"net/http"
	"strings"

	"seek-trends/utils"
)

// FetchDescription fetches the markdown rendering of one job posting through
// the text-extraction proxy. The body is treated opaquely.
//
// Error classification follows the cache-fill retry policy: transport errors
// and HTTP 429 are retryable; any other non-200 status, or a 200 with an
// empty body, is wrapped with utils.Permanent so the caller gives up on this
// identifier for the run.
func (c *Client) FetchDescription(jobID string) (string, error) {
	resp, err := c.detail.R().Get(c.cfg.DetailProxyURL + jobID)
	if err != nil {
		return "", fmt.Errorf("seek: detail %s: %w", jobID, err)
	}

	status := resp.StatusCode()
	if status == http.StatusTooManyRequests {
		return "", fmt.Errorf("seek: detail %s: rate limited (429)", jobID)
	}
	if status != http.StatusOK {
		return "", utils.Permanent(fmt.Errorf("seek: detail %s: unexpected status %d", jobID, status))
	}

	body := resp.String()
	if strings.TrimSpace(body) == "" {
		return "", utils.Permanent(fmt.Errorf("seek: detail %s: empty body", jobID))
	}
	return body, nil
}
