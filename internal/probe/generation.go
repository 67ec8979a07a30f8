package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// GenerationChecker posts the diagnostic payload to the music-generator
// endpoint. Pass requires HTTP 200 AND a body whose status field is "success".
// A timed-out request yields OutcomeTimeout so the operator can tell a slow
// generator from a broken one.
type GenerationChecker struct {
	Name    string // result name; the same checker serves keyed and unkeyed runs
	URL     string
	Payload domain.GenerationRequest
	Client  *http.Client
}

func NewGenerationChecker(name, url string, timeout time.Duration) *GenerationChecker {
	return &GenerationChecker{
		Name:    name,
		URL:     url,
		Payload: domain.DefaultGenerationRequest(),
		Client:  &http.Client{Timeout: timeout},
	}
}

func (g *GenerationChecker) Check(ctx context.Context, apiKey string) domain.CheckResult {
	body, err := json.Marshal(g.Payload)
	if err != nil {
		return domain.CheckResult{Name: g.Name, Outcome: domain.OutcomeFail, Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return domain.CheckResult{Name: g.Name, Outcome: domain.OutcomeFail, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	start := time.Now()
	resp, err := g.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		if isTimeout(err) {
			return domain.CheckResult{
				Name:      g.Name,
				Outcome:   domain.OutcomeTimeout,
				Detail:    "request timed out (music generation can take 1-3 minutes)",
				LatencyMS: latency,
			}
		}
		return domain.CheckResult{
			Name:      g.Name,
			Outcome:   domain.OutcomeFail,
			Detail:    err.Error(),
			LatencyMS: latency,
		}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var gr domain.GenerationResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		// Surface the raw text, not the decode error.
		return domain.CheckResult{
			Name:       g.Name,
			Outcome:    domain.OutcomeFail,
			Detail:     string(raw),
			StatusCode: resp.StatusCode,
			LatencyMS:  latency,
		}
	}

	if resp.StatusCode == http.StatusOK && gr.Status == "success" {
		detail := "generation accepted"
		if gr.URL != "" {
			detail = "audio URL: " + gr.URL
		}
		return domain.CheckResult{
			Name:       g.Name,
			Outcome:    domain.OutcomePass,
			Detail:     detail,
			StatusCode: resp.StatusCode,
			LatencyMS:  latency,
		}
	}

	reason := gr.Error
	if reason == "" {
		reason = "Unknown error"
	}
	return domain.CheckResult{
		Name:       g.Name,
		Outcome:    domain.OutcomeFail,
		Detail:     reason,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
