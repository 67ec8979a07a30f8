package domain

import (
	"encoding/json"
	"testing"
)

func TestCheckResult_JSONRoundTrip(t *testing.T) {
	want := CheckResult{
		Name:       CheckConnectivity,
		Outcome:    OutcomePass,
		Detail:     `{"status":"ok"}`,
		StatusCode: 200,
		LatencyMS:  123.45,
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got CheckResult
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Name != want.Name || got.Outcome != want.Outcome ||
		got.Detail != want.Detail || got.StatusCode != want.StatusCode {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
	// float compare (tolerant)
	if (got.LatencyMS-want.LatencyMS) > 1e-9 || (want.LatencyMS-got.LatencyMS) > 1e-9 {
		t.Fatalf("latency mismatch: want=%v got=%v", want.LatencyMS, got.LatencyMS)
	}
}

func TestDefaultGenerationRequest_Payload(t *testing.T) {
	p := DefaultGenerationRequest()
	if p.Prompt == "" {
		t.Fatal("prompt should not be empty")
	}
	if p.Duration != 30 || p.Tempo != 70 {
		t.Fatalf("unexpected duration/tempo: %d/%d", p.Duration, p.Tempo)
	}
	if len(p.Instruments) != 2 {
		t.Fatalf("want 2 instruments, got %v", p.Instruments)
	}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, f := range []string{"prompt", "duration", "style", "mood", "tempo", "key", "instruments"} {
		if _, ok := m[f]; !ok {
			t.Fatalf("payload missing field %q", f)
		}
	}
}

func TestNeedsTroubleshooting(t *testing.T) {
	bothDown := []CheckResult{
		{Name: CheckConnectivity, Outcome: OutcomeFail},
		{Name: CheckAgentsList, Outcome: OutcomeFail},
		{Name: CheckGenerationNoKey, Outcome: OutcomePass},
	}
	if !NeedsTroubleshooting(bothDown) {
		t.Fatal("want troubleshooting when both read checks fail")
	}

	oneUp := []CheckResult{
		{Name: CheckConnectivity, Outcome: OutcomeFail},
		{Name: CheckAgentsList, Outcome: OutcomePass},
	}
	if NeedsTroubleshooting(oneUp) {
		t.Fatal("no troubleshooting when one read check passes")
	}

	if NeedsTroubleshooting(nil) {
		t.Fatal("no troubleshooting for empty results")
	}
}
