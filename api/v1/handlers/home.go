package handlers

import (
	"net/http"

	"github.com/cicd-demo/backend/api/v1/models"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.RootResponse{
		Message: "Hello World",
		Status:  "running",
	})
}
