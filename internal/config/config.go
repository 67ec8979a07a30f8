package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Hosted deployment the probe targets when nothing is overridden.
const defaultBaseURL = "https://thzhvpxpkajthfkzfxbr.supabase.co/functions/v1/agents"

type Config struct {
	BaseURL       string        // agents function root, no trailing slash
	GetTimeout    time.Duration // connectivity + agents-list checks
	PostTimeout   time.Duration // generation check (generation can take minutes)
	RetryAttempts int           // attempts per check; 1 means no retry
	RetryBackoff  time.Duration // backoff between retry attempts
	LogDir        string        // logs directory
}

func FromEnv() Config {
	base := strings.TrimRight(os.Getenv("BASE_URL"), "/")
	if base == "" {
		base = defaultBaseURL
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	getTimeout := 10 * time.Second
	if v := os.Getenv("GET_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			getTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	postTimeout := 60 * time.Second
	if v := os.Getenv("POST_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			postTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	retryAttempts := 1
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retryAttempts = n
		}
	}

	retryBackoff := 300 * time.Millisecond
	if v := os.Getenv("RETRY_BACKOFF_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			retryBackoff = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		BaseURL:       base,
		GetTimeout:    getTimeout,
		PostTimeout:   postTimeout,
		RetryAttempts: retryAttempts,
		RetryBackoff:  retryBackoff,
		LogDir:        logDir,
	}
}

// The three endpoints derived from BaseURL.

func (c Config) TestURL() string     { return c.BaseURL + "/test" }
func (c Config) ListURL() string     { return c.BaseURL }
func (c Config) GenerateURL() string { return c.BaseURL + "/music-generator" }
