package domain

// GenerationRequest is the body posted to the music-generator endpoint.
type GenerationRequest struct {
	Prompt      string   `json:"prompt"`
	Duration    int      `json:"duration"` // seconds
	Style       string   `json:"style"`
	Mood        string   `json:"mood"`
	Tempo       int      `json:"tempo"` // BPM
	Key         string   `json:"key"`   // musical key, e.g. "C minor"
	Instruments []string `json:"instruments"`
}

// GenerationResponse is what the endpoint returns. Status is "success" on the
// happy path; Error is set on the failure path.
type GenerationResponse struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DefaultGenerationRequest is the fixed diagnostic payload every probe run
// sends. It is intentionally small so a healthy service answers quickly.
func DefaultGenerationRequest() GenerationRequest {
	return GenerationRequest{
		Prompt:      "Create a peaceful meditation track with soft piano and gentle strings",
		Duration:    30,
		Style:       "ambient",
		Mood:        "peaceful",
		Tempo:       70,
		Key:         "C minor",
		Instruments: []string{"piano", "strings"},
	}
}
