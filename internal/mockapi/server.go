// Package mockapi emulates the remote agents service so the probe can be run
// and tested without touching the hosted deployment.
package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hamed0406/agentprobe/internal/domain"
)

type Server struct {
	APIKey   string        // when set, generation requires a matching X-API-Key
	AudioURL string        // url returned on successful generation
	GenDelay time.Duration // artificial latency before generation responds
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/test", s.handleTest)
	r.Get("/", s.handleAgents)
	r.Post("/music-generator", s.handleGenerate)

	return r
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "agents function is up",
	})
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []domain.Agent{
		{Name: "music-generator", Status: "active"},
		{Name: "test", Status: "active"},
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.GenDelay > 0 {
		select {
		case <-time.After(s.GenDelay):
		case <-r.Context().Done():
			return
		}
	}

	var req domain.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, domain.GenerationResponse{
			Status: "error",
			Error:  "invalid generation request",
		})
		return
	}

	if s.APIKey != "" && r.Header.Get("X-API-Key") != s.APIKey {
		writeJSON(w, http.StatusUnauthorized, domain.GenerationResponse{
			Status: "error",
			Error:  "missing or invalid API key",
		})
		return
	}

	url := s.AudioURL
	if url == "" {
		url = "https://cdn.example.com/generated/track.mp3"
	}
	writeJSON(w, http.StatusOK, domain.GenerationResponse{
		Status: "success",
		URL:    url,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
