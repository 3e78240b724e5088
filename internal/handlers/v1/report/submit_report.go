package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-report/internal/logging"
)

// SubmitReportResponse is the response body for a submit.
type SubmitReportResponse struct {
	Accepted bool  `json:"accepted" doc:"False when a request was already in flight"`
	State    State `json:"state"`
}

// SubmitReportOutput is the Huma output for a submit.
type SubmitReportOutput struct {
	Status int `json:"-"`
	Body   SubmitReportResponse
}

// SubmitReportHandler handles POST /v1/report/submit.
type SubmitReportHandler struct {
	controller reportController
}

// NewSubmitReportHandler creates a new SubmitReportHandler.
func NewSubmitReportHandler(c reportController) *SubmitReportHandler {
	return &SubmitReportHandler{controller: c}
}

// Register registers the submit endpoint with the Huma API.
func (h *SubmitReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-report",
		Method:        http.MethodPost,
		Path:          "/v1/report/submit",
		Summary:       "Submit report request",
		Description:   "Starts a report request for the current identifier. Ignored while a request is in flight.",
		Tags:          []string{"Report"},
		DefaultStatus: http.StatusAccepted,
	}, h.handle)
}

func (h *SubmitReportHandler) handle(ctx context.Context, _ *struct{}) (*SubmitReportOutput, error) {
	accepted := h.controller.Submit(ctx)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accepted", accepted)
	}

	status := http.StatusAccepted
	if !accepted {
		status = http.StatusOK
	}

	return &SubmitReportOutput{
		Status: status,
		Body: SubmitReportResponse{
			Accepted: accepted,
			State:    stateFromController(h.controller.State()),
		},
	}, nil
}
