package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// GetReportOutput is the Huma output for the current view.
type GetReportOutput struct {
	Body View
}

// GetReportHandler handles GET /v1/report.
type GetReportHandler struct {
	controller reportController
}

// NewGetReportHandler creates a new GetReportHandler.
func NewGetReportHandler(c reportController) *GetReportHandler {
	return &GetReportHandler{controller: c}
}

// Register registers the get report endpoint with the Huma API.
func (h *GetReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/report",
		Summary:     "Get report view",
		Description: "Returns the current panel, request state and, after a successful report, its breakdown.",
		Tags:        []string{"Report"},
	}, h.handle)
}

func (h *GetReportHandler) handle(_ context.Context, _ *struct{}) (*GetReportOutput, error) {
	return &GetReportOutput{Body: viewFromController(h.controller.View())}, nil
}
