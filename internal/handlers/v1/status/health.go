package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthOutput is the Huma output for the health check.
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"healthy" doc:"Service health"`
	}
}

// HealthHandler handles GET /health on the budget backend.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register registers the health endpoint with the Huma API.
func (h *HealthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *HealthHandler) handle(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "healthy"
	return out, nil
}
