package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-report/internal/logging"
)

// SetUserBody is the request body for setting the user identifier.
type SetUserBody struct {
	UserID string `json:"userID" doc:"Identifier for the next request, may be empty"`
}

// SetUserInput is the Huma input for setting the user identifier.
type SetUserInput struct {
	Body SetUserBody
}

// SetUserOutput is the Huma output for setting the user identifier.
type SetUserOutput struct {
	Body View
}

// SetUserHandler handles PUT /v1/report/user.
type SetUserHandler struct {
	controller reportController
}

// NewSetUserHandler creates a new SetUserHandler.
func NewSetUserHandler(c reportController) *SetUserHandler {
	return &SetUserHandler{controller: c}
}

// Register registers the set user endpoint with the Huma API.
func (h *SetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-report-user",
		Method:      http.MethodPut,
		Path:        "/v1/report/user",
		Summary:     "Set user identifier",
		Description: "Sets the identifier sent with the next report request. Has no effect on a request in flight.",
		Tags:        []string{"Report"},
	}, h.handle)
}

func (h *SetUserHandler) handle(ctx context.Context, input *SetUserInput) (*SetUserOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", input.Body.UserID)
	}

	h.controller.SetUserIdentifier(input.Body.UserID)
	return &SetUserOutput{Body: viewFromController(h.controller.View())}, nil
}
