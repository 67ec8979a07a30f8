package runner

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hamed0406/agentprobe/internal/config"
	"github.com/hamed0406/agentprobe/internal/domain"
	"github.com/hamed0406/agentprobe/internal/probe"
	"github.com/hamed0406/agentprobe/internal/secret"
)

// Runner executes the diagnostic sequence: connectivity, agents list,
// generation without a key, then generation with a key if the operator
// supplies one. Checks run strictly one after another; a failure never stops
// the sequence.
type Runner struct {
	Logger       *zap.Logger
	Connectivity probe.Checker
	AgentsList   probe.Checker
	GenNoKey     probe.Checker
	GenWithKey   probe.Checker
	Keys         secret.Source
}

func New(logger *zap.Logger, cfg config.Config, keys secret.Source) *Runner {
	wrap := func(c probe.Checker) probe.Checker {
		if cfg.RetryAttempts <= 1 {
			return c
		}
		return &probe.RetryChecker{Inner: c, Attempts: cfg.RetryAttempts, Backoff: cfg.RetryBackoff}
	}
	return &Runner{
		Logger:       logger,
		Connectivity: wrap(probe.NewConnectivityChecker(cfg.TestURL(), cfg.GetTimeout)),
		AgentsList:   wrap(probe.NewAgentListChecker(cfg.ListURL(), cfg.GetTimeout)),
		GenNoKey:     wrap(probe.NewGenerationChecker(domain.CheckGenerationNoKey, cfg.GenerateURL(), cfg.PostTimeout)),
		GenWithKey:   wrap(probe.NewGenerationChecker(domain.CheckGenerationWithKey, cfg.GenerateURL(), cfg.PostTimeout)),
		Keys:         keys,
	}
}

// Run executes the full sequence and returns one result per check, in run
// order. The keyed generation result is OutcomeSkipped when no key was given.
func (r *Runner) Run(ctx context.Context) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, 4)

	for _, c := range []probe.Checker{r.Connectivity, r.AgentsList, r.GenNoKey} {
		res := c.Check(ctx, "")
		r.log(res)
		results = append(results, res)
	}

	key, err := r.Keys.APIKey()
	if err != nil {
		r.Logger.Warn("api_key_read_error", zap.Error(err))
	}
	key = strings.TrimSpace(key)

	if key == "" {
		res := domain.CheckResult{
			Name:    domain.CheckGenerationWithKey,
			Outcome: domain.OutcomeSkipped,
			Detail:  "no API key supplied",
		}
		r.log(res)
		return append(results, res)
	}

	res := r.GenWithKey.Check(ctx, key)
	r.log(res)
	return append(results, res)
}

func (r *Runner) log(res domain.CheckResult) {
	r.Logger.Info("check_done",
		zap.String("check", res.Name),
		zap.String("outcome", string(res.Outcome)),
		zap.Int("status", res.StatusCode),
		zap.Float64("latency_ms", res.LatencyMS),
	)
}
