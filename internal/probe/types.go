package probe

import (
	"context"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// Checker performs a single probe against the remote service. apiKey is empty
// for unkeyed runs; checkers that don't authenticate ignore it.
type Checker interface {
	Check(ctx context.Context, apiKey string) domain.CheckResult
}
