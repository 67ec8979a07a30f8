package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// AgentListChecker fetches the agent roster from the function root. Pass
// requires HTTP 200 with a JSON array; Detail lists each agent's name and
// status, with "Unknown" standing in for absent fields.
type AgentListChecker struct {
	URL    string
	Client *http.Client
}

func NewAgentListChecker(url string, timeout time.Duration) *AgentListChecker {
	return &AgentListChecker{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (c *AgentListChecker) Check(ctx context.Context, _ string) domain.CheckResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return domain.CheckResult{Name: domain.CheckAgentsList, Outcome: domain.OutcomeFail, Detail: err.Error()}
	}

	resp, err := c.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		return domain.CheckResult{
			Name:      domain.CheckAgentsList,
			Outcome:   domain.OutcomeFail,
			Detail:    err.Error(),
			LatencyMS: latency,
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return domain.CheckResult{
			Name:       domain.CheckAgentsList,
			Outcome:    domain.OutcomeFail,
			Detail:     string(body),
			StatusCode: resp.StatusCode,
			LatencyMS:  latency,
		}
	}

	var agents []domain.Agent
	if err := json.Unmarshal(body, &agents); err != nil {
		return domain.CheckResult{
			Name:       domain.CheckAgentsList,
			Outcome:    domain.OutcomeFail,
			Detail:     string(body),
			StatusCode: resp.StatusCode,
			LatencyMS:  latency,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d agents:", len(agents))
	for _, a := range agents {
		fmt.Fprintf(&b, "\n  • %s - %s", orUnknown(a.Name), orUnknown(a.Status))
	}

	return domain.CheckResult{
		Name:       domain.CheckAgentsList,
		Outcome:    domain.OutcomePass,
		Detail:     b.String(),
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
