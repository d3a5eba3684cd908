package handlers

import (
	"net/http"

	"github.com/cicd-demo/backend/api/v1/models"
)

// APIVersion is reported by GET /api/version.
const APIVersion = "1.0.0"

type InfoHandler struct {
	Env string
}

// Version handles GET /api/version.
func (h *InfoHandler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.VersionResponse{
		Version:     APIVersion,
		Environment: h.Env,
	})
}
