package handlers

import (
	"net/http"

	"github.com/cicd-demo/backend/api/v1/models"
)

const (
	HealthStatus  = "ok"
	HealthVersion = "1.0"
	HealthMessage = "Backend is running!"
)

var healthResponse = models.HealthResponse{
	Status:  HealthStatus,
	Version: HealthVersion,
	Message: HealthMessage,
}

// HealthHandler handles GET /api/health. The body never varies with the request.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse)
}

// LivenessHandler handles GET /health for orchestrator probes.
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.LivenessResponse{Status: "healthy"})
}
