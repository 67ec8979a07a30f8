// cmd/mockserver runs the local agents-service emulator so the probe can be
// exercised without the hosted deployment:
//
//	BASE_URL=http://127.0.0.1:8787 go run ./cmd/agentprobe
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hamed0406/agentprobe/internal/mockapi"
)

func main() {
	addr := os.Getenv("MOCK_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8787"
	}

	srv := &mockapi.Server{
		APIKey:   os.Getenv("MOCK_API_KEY"), // empty means no auth
		AudioURL: os.Getenv("MOCK_AUDIO_URL"),
	}
	if v := os.Getenv("MOCK_GEN_DELAY_MS"); v != "" {
		if d, err := time.ParseDuration(v + "ms"); err == nil {
			srv.GenDelay = d
		}
	}

	log.Println("mockserver listening on", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
