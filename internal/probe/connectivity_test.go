package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hamed0406/agentprobe/internal/domain"
)

func TestConnectivityChecker_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer s.Close()

	chk := NewConnectivityChecker(s.URL, 2*time.Second)
	out := chk.Check(context.Background(), "")
	if out.Outcome != domain.OutcomePass {
		t.Fatalf("want pass, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if !strings.Contains(out.Detail, `"status":"ok"`) {
		t.Fatalf("want body echoed, got %q", out.Detail)
	}
	if out.LatencyMS < 0 {
		t.Fatalf("latency should be >= 0, got %f", out.LatencyMS)
	}
}

func TestConnectivityChecker_Non200Fails(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewConnectivityChecker(s.URL, 2*time.Second)
	out := chk.Check(context.Background(), "")
	if out.Outcome != domain.OutcomeFail {
		t.Fatalf("want fail, got %+v", out)
	}
	if out.StatusCode != 500 {
		t.Fatalf("want status 500, got %d", out.StatusCode)
	}
	if !strings.Contains(out.Detail, "boom") {
		t.Fatalf("want raw body surfaced, got %q", out.Detail)
	}
}

func TestConnectivityChecker_NonJSONBodyFails(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer s.Close()

	chk := NewConnectivityChecker(s.URL, 2*time.Second)
	out := chk.Check(context.Background(), "")
	if out.Outcome != domain.OutcomeFail {
		t.Fatalf("want fail on non-JSON body, got %+v", out)
	}
	if !strings.Contains(out.Detail, "not json") {
		t.Fatalf("want raw text surfaced, got %q", out.Detail)
	}
}

func TestConnectivityChecker_TransportErrorFails(t *testing.T) {
	// Server sleeps longer than client timeout; a GET check reports a plain
	// failure, not a timeout outcome.
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer s.Close()

	chk := NewConnectivityChecker(s.URL, 50*time.Millisecond)
	out := chk.Check(context.Background(), "")
	if out.Outcome != domain.OutcomeFail {
		t.Fatalf("want fail on transport error, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if out.Detail == "" {
		t.Fatal("want non-empty error detail")
	}
}
