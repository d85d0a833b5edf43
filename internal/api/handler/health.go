package handler

import (
	"net/http"

	"github.com/teamform/teamform/internal/api/middleware"
	"github.com/teamform/teamform/internal/api/response"
	"github.com/teamform/teamform/internal/submission"
	"github.com/teamform/teamform/internal/team"
)

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

type healthData struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	TeamSize    int    `json:"teamSize"`
	CatalogSize int    `json:"catalogSize"`
}

// ServeHTTP reports the service version and the formation constants.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	response.Success(w, http.StatusOK, healthData{
		Status:      "healthy",
		Version:     h.version,
		TeamSize:    team.Size,
		CatalogSize: submission.CatalogSize,
	}, requestID)
}
