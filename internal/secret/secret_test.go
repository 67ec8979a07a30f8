package secret

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompt_ReadsKey(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("  sk_live_abc  \n"), &out)

	key, err := p.APIKey()
	if err != nil {
		t.Fatalf("APIKey: %v", err)
	}
	if key != "sk_live_abc" {
		t.Fatalf("want trimmed key, got %q", key)
	}
	if !strings.Contains(out.String(), "Enter your API key") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestPrompt_EmptyLineSkips(t *testing.T) {
	p := NewPrompt(strings.NewReader("\n"), &bytes.Buffer{})
	key, err := p.APIKey()
	if err != nil {
		t.Fatalf("APIKey: %v", err)
	}
	if key != "" {
		t.Fatalf("want empty key, got %q", key)
	}
}

func TestPrompt_EOFBehavesLikeSkip(t *testing.T) {
	p := NewPrompt(strings.NewReader(""), &bytes.Buffer{})
	key, err := p.APIKey()
	if err != nil {
		t.Fatalf("EOF should not error: %v", err)
	}
	if key != "" {
		t.Fatalf("want empty key on EOF, got %q", key)
	}
}

func TestStatic(t *testing.T) {
	key, err := Static("k1").APIKey()
	if err != nil || key != "k1" {
		t.Fatalf("static source: %q %v", key, err)
	}
}
