package report

import (
	"context"

	"go.uber.org/multierr"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// Reporter renders a finished probe run somewhere: the console, the log file.
type Reporter interface {
	Report(ctx context.Context, results []domain.CheckResult) error
}

type Multi []Reporter

func (m Multi) Report(ctx context.Context, results []domain.CheckResult) error {
	var err error
	for _, r := range m {
		if r == nil {
			continue
		}
		err = multierr.Append(err, r.Report(ctx, results))
	}
	return err
}
