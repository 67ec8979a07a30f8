package probe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// ConnectivityChecker probes the debug endpoint. Pass requires HTTP 200 with a
// JSON-decodable body; the body (or error text) is echoed in Detail either way.
type ConnectivityChecker struct {
	URL    string
	Client *http.Client
}

func NewConnectivityChecker(url string, timeout time.Duration) *ConnectivityChecker {
	return &ConnectivityChecker{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (c *ConnectivityChecker) Check(ctx context.Context, _ string) domain.CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return domain.CheckResult{Name: domain.CheckConnectivity, Outcome: domain.OutcomeFail, Detail: err.Error()}
	}

	resp, err := c.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return domain.CheckResult{
			Name:      domain.CheckConnectivity,
			Outcome:   domain.OutcomeFail,
			Detail:    err.Error(),
			LatencyMS: latency,
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !json.Valid(body) {
		return domain.CheckResult{
			Name:       domain.CheckConnectivity,
			Outcome:    domain.OutcomeFail,
			Detail:     string(body),
			StatusCode: resp.StatusCode,
			LatencyMS:  latency,
		}
	}

	return domain.CheckResult{
		Name:       domain.CheckConnectivity,
		Outcome:    domain.OutcomePass,
		Detail:     string(body),
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
	}
}
