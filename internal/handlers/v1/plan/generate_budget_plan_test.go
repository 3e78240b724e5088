package plan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPlanService struct {
	mock.Mock
}

func (m *mockPlanService) GenerateBudgetPlan(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc planGenerator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGenerateBudgetPlanHandler(svc).Register(api)
	return api
}

func TestHTTP_GenerateBudgetPlan_Success(t *testing.T) {
	mockSvc := new(mockPlanService)
	mockSvc.On("GenerateBudgetPlan", mock.Anything, "demo_user").Return("# Report", nil)

	resp := newTestAPI(t, mockSvc).Post("/generate_budget_plan", GenerateBudgetPlanBody{UserID: "demo_user"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GenerateBudgetPlanResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "demo_user", body.UserID)
	assert.Equal(t, "# Report", body.BudgetPlan)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GenerateBudgetPlan_EmptyUserID(t *testing.T) {
	mockSvc := new(mockPlanService)
	mockSvc.On("GenerateBudgetPlan", mock.Anything, "").Return("# Report", nil)

	resp := newTestAPI(t, mockSvc).Post("/generate_budget_plan", GenerateBudgetPlanBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GenerateBudgetPlan_MissingUserID(t *testing.T) {
	mockSvc := new(mockPlanService)

	resp := newTestAPI(t, mockSvc).Post("/generate_budget_plan", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GenerateBudgetPlan")
}

func TestHTTP_GenerateBudgetPlan_ServiceError(t *testing.T) {
	mockSvc := new(mockPlanService)
	mockSvc.On("GenerateBudgetPlan", mock.Anything, "demo_user").Return("", errors.New("aggregator down"))

	resp := newTestAPI(t, mockSvc).Post("/generate_budget_plan", GenerateBudgetPlanBody{UserID: "demo_user"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body struct {
		Detail string `json:"detail"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "failed to generate budget plan: aggregator down", body.Detail)
}
