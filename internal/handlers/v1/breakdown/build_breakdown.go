package breakdown

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-report/internal/visualization"
)

// BuildBreakdownBody is the request body for building a breakdown.
type BuildBreakdownBody struct {
	Categories []CategoryAmount `json:"categories" required:"true" doc:"Category totals, in display order"`
}

// BuildBreakdownInput is the Huma input for building a breakdown.
type BuildBreakdownInput struct {
	Body BuildBreakdownBody
}

// BuildBreakdownOutput is the Huma output for building a breakdown.
type BuildBreakdownOutput struct {
	Body Breakdown
}

// BuildBreakdownHandler handles POST /v1/breakdown.
type BuildBreakdownHandler struct{}

// NewBuildBreakdownHandler creates a new BuildBreakdownHandler.
func NewBuildBreakdownHandler() *BuildBreakdownHandler {
	return &BuildBreakdownHandler{}
}

// Register registers the build breakdown endpoint with the Huma API.
func (h *BuildBreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "build-breakdown",
		Method:      http.MethodPost,
		Path:        "/v1/breakdown",
		Summary:     "Build breakdown",
		Description: "Computes chart series and summary figures for an arbitrary category list.",
		Tags:        []string{"Breakdown"},
	}, h.handle)
}

func (h *BuildBreakdownHandler) handle(_ context.Context, input *BuildBreakdownInput) (*BuildBreakdownOutput, error) {
	items, err := parseCategories(input.Body.Categories)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}

	return &BuildBreakdownOutput{Body: FromEngine(visualization.Build(items))}, nil
}

func parseCategories(in []CategoryAmount) ([]visualization.CategoryAmount, error) {
	items := make([]visualization.CategoryAmount, len(in))
	for i, category := range in {
		amount, err := decimal.NewFromString(category.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for category %q", category.Category)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("negative amount for category %q", category.Category)
		}
		items[i] = visualization.CategoryAmount{
			Category: category.Category,
			Amount:   amount,
			Color:    category.Color,
		}
	}
	return items, nil
}
