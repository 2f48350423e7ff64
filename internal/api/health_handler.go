package api

import (
	"net/http"
	"time"

	"github.com/taskhive/task-api/internal/api/shared"
)

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck handles GET /health requests. It bypasses the task service
// entirely: a degraded store or cache does not fail the liveness probe.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
