// Package reportclient talks to the budget-plan generation backend.
package reportclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the report-generation endpoint of a locally running backend.
const DefaultEndpoint = "http://localhost:8000/generate_budget_plan"

const maxResponseBytes = 10 << 20

// BackendError is returned for any non-2xx response. Detail is empty when the
// body carried no string "detail" field.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("report backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("report backend returned status %d: %s", e.StatusCode, e.Detail)
}

type generateRequest struct {
	UserID string `json:"user_id"`
}

type generateResponse struct {
	BudgetPlan *string `json:"budget_plan"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Client issues report requests. It never retries and, unless the caller's
// context says otherwise, never times out.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(endpoint string, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateBudgetPlan posts the user identifier and returns the report text.
// A success response without a usable budget_plan yields an empty report.
func (c *Client) GenerateBudgetPlan(ctx context.Context, userID string) (string, error) {
	payload, err := json.Marshal(generateRequest{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("encode report request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send report request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read report response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &BackendError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
		}
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		c.logger.WithError(err).Warn("ReportClient.GenerateBudgetPlan.undecodable success body")
		return "", nil
	}
	if decoded.BudgetPlan == nil {
		c.logger.Warn("ReportClient.GenerateBudgetPlan.missing budget_plan")
		return "", nil
	}

	return *decoded.BudgetPlan, nil
}

func parseDetail(body []byte) string {
	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err != nil || len(decoded.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(decoded.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
