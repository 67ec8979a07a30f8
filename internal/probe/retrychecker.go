package probe

import (
	"context"
	"time"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// RetryChecker re-runs a failing check up to Attempts times. The default probe
// sequence uses a single attempt; wrap explicitly for flaky networks.
type RetryChecker struct {
	Inner    Checker
	Attempts int
	Backoff  time.Duration
}

func (r *RetryChecker) Check(ctx context.Context, apiKey string) domain.CheckResult {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var last domain.CheckResult
	for i := 0; i < attempts; i++ {
		last = r.Inner.Check(ctx, apiKey)
		if last.Passed() {
			return last
		}
		if i < attempts-1 {
			time.Sleep(r.Backoff)
		}
	}
	// annotate detail so you can see it was a retry series
	if attempts > 1 {
		last.Detail = last.Detail + " (after retries)"
	}
	return last
}
