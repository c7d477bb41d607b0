package handler

import (
	"net/http"

	"github.com/dtroode/gourmet-server/internal/logger"
)

// Health serves liveness and readiness checks.
type Health struct {
	checker ReadinessChecker
	logger  *logger.Logger
}

func NewHealth(checker ReadinessChecker, logger *logger.Logger) *Health {
	return &Health{checker: checker, logger: logger}
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Healthz reports that the process is up.
func (h *Health) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Readyz reports the latest dependency check results.
func (h *Health) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.Err(r.Context()); err != nil {
		h.logger.Warn("not ready", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
