package rest

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"time"
)

const checkTimeout = 3 * time.Second

// Pinger is any dependency that can report its own availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and detailed health checks.
type HealthHandler struct {
	components map[string]Pinger
	version    string
}

// NewHealthHandler creates a HealthHandler checking the named components.
func NewHealthHandler(version string, components map[string]Pinger) *HealthHandler {
	return &HealthHandler{components: components, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness check: 200 when every component answers, else 503.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.checkAll(r.Context())
	writeJSON(w, httpStatusFor(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports per-component status with latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.checkAll(r.Context())
	writeJSON(w, httpStatusFor(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkAll(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	overall := "ok"
	results := make(map[string]CompStatus, len(h.components))
	for _, name := range slices.Sorted(maps.Keys(h.components)) {
		start := time.Now()
		if err := h.components[name].Ping(ctx); err != nil {
			results[name] = CompStatus{Status: "down", Error: err.Error()}
			overall = "down"
			continue
		}
		results[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return overall, results
}

func httpStatusFor(status string) int {
	if status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
