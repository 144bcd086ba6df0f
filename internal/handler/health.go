package handler

import (
	"net/http"
)

const version = "1.0.0"

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root is the legacy liveness probe on "/"
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}

// Health reports that the process is up. It never inspects dependencies,
// so it answers 200 even when SMTP is not configured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Backend is alive!",
		Version: version,
	})
}

// Ready returns whether the service can take lead submissions
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	ready := true

	if h.cfg.SMTP.Configured() {
		checks["smtp"] = "configured"
	} else {
		checks["smtp"] = "missing credentials"
		ready = false
	}

	if h.cfg.RateLimiting.Enabled {
		if h.rdb == nil {
			checks["redis"] = "unavailable"
			ready = false
		} else if err := h.rdb.HealthCheck(r.Context()); err != nil {
			checks["redis"] = "unhealthy"
			ready = false
		} else {
			checks["redis"] = "healthy"
		}
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not_ready"
	}

	writeJSON(w, status, map[string]interface{}{
		"status": state,
		"checks": checks,
	})
}
