package plan

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-report/internal/logging"
)

// GenerateBudgetPlanBody is the request body for generating a plan.
type GenerateBudgetPlanBody struct {
	UserID string `json:"user_id" required:"true" doc:"User to generate the plan for"`
}

// GenerateBudgetPlanInput is the Huma input for generating a plan.
type GenerateBudgetPlanInput struct {
	Body GenerateBudgetPlanBody
}

// GenerateBudgetPlanResponse is the response body for a generated plan.
type GenerateBudgetPlanResponse struct {
	Status     string `json:"status" example:"success" doc:"Always success"`
	UserID     string `json:"user_id" doc:"User the plan was generated for"`
	BudgetPlan string `json:"budget_plan" doc:"Markdown budget report"`
}

// GenerateBudgetPlanOutput is the Huma output for generating a plan.
type GenerateBudgetPlanOutput struct {
	Body GenerateBudgetPlanResponse
}

type planGenerator interface {
	GenerateBudgetPlan(ctx context.Context, userID string) (string, error)
}

// GenerateBudgetPlanHandler handles POST /generate_budget_plan.
type GenerateBudgetPlanHandler struct {
	planService planGenerator
}

// NewGenerateBudgetPlanHandler creates a new GenerateBudgetPlanHandler.
func NewGenerateBudgetPlanHandler(svc planGenerator) *GenerateBudgetPlanHandler {
	return &GenerateBudgetPlanHandler{planService: svc}
}

// Register registers the generate budget plan endpoint with the Huma API.
func (h *GenerateBudgetPlanHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-budget-plan",
		Method:      http.MethodPost,
		Path:        "/generate_budget_plan",
		Summary:     "Generate budget plan",
		Description: "Analyzes the user's transactions and returns a markdown budget report.",
		Tags:        []string{"Plans"},
	}, h.handle)
}

func (h *GenerateBudgetPlanHandler) handle(ctx context.Context, input *GenerateBudgetPlanInput) (*GenerateBudgetPlanOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", input.Body.UserID)
	}

	report, err := h.planService.GenerateBudgetPlan(ctx, input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to generate budget plan: "+err.Error())
	}

	return &GenerateBudgetPlanOutput{
		Body: GenerateBudgetPlanResponse{
			Status:     "success",
			UserID:     input.Body.UserID,
			BudgetPlan: report,
		},
	}, nil
}
