package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/hamed0406/agentprobe/internal/domain"
)

// ZapReporter mirrors the run into the structured log file.
type ZapReporter struct {
	Logger *zap.Logger
}

func NewZap(l *zap.Logger) *ZapReporter { return &ZapReporter{Logger: l} }

func (z *ZapReporter) Report(ctx context.Context, results []domain.CheckResult) error {
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
		}
	}
	z.Logger.Info("run_summary",
		zap.Int("checks", len(results)),
		zap.Int("passed", passed),
		zap.Bool("needs_troubleshooting", domain.NeedsTroubleshooting(results)),
	)
	for _, r := range results {
		z.Logger.Info("check_result",
			zap.String("check", r.Name),
			zap.String("outcome", string(r.Outcome)),
			zap.Int("status", r.StatusCode),
			zap.Float64("latency_ms", r.LatencyMS),
			zap.String("detail", r.Detail),
		)
	}
	return nil
}
