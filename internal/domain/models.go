package domain

// Outcome classifies a single check after it ran (or was skipped).
type Outcome string

const (
	OutcomePass    Outcome = "pass"
	OutcomeFail    Outcome = "fail"
	OutcomeTimeout Outcome = "timeout"
	OutcomeSkipped Outcome = "skipped"
)

// Check names, in run order.
const (
	CheckConnectivity      = "connectivity"
	CheckAgentsList        = "agents_list"
	CheckGenerationNoKey   = "music_gen_no_key"
	CheckGenerationWithKey = "music_gen_with_key"
)

// CheckResult is the structured outcome of one probe against the service.
// Detail carries whatever the operator should see: the echoed response body,
// the agent listing, or the error text. StatusCode is 0 for transport errors.
type CheckResult struct {
	Name       string  `json:"name"`
	Outcome    Outcome `json:"outcome"`
	Detail     string  `json:"detail,omitempty"`
	StatusCode int     `json:"status_code,omitempty"`
	LatencyMS  float64 `json:"latency_ms,omitempty"`
}

func (r CheckResult) Passed() bool { return r.Outcome == OutcomePass }

// Agent is one element of the agents-list response.
type Agent struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// NeedsTroubleshooting reports whether both read-only checks (connectivity and
// agents list) failed, which usually means the deployment itself is broken
// rather than any single endpoint.
func NeedsTroubleshooting(results []CheckResult) bool {
	readOK := false
	seen := 0
	for _, r := range results {
		if r.Name == CheckConnectivity || r.Name == CheckAgentsList {
			seen++
			if r.Passed() {
				readOK = true
			}
		}
	}
	return seen > 0 && !readOK
}
