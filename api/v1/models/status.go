package models

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Message string `json:"message"`
}

// LivenessResponse is the body of GET /health.
type LivenessResponse struct {
	Status string `json:"status"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}
