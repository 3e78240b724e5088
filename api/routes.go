package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-report/internal/controller"
	"github.com/carson-networks/budget-report/internal/handlers/v1/breakdown"
	"github.com/carson-networks/budget-report/internal/handlers/v1/plan"
	"github.com/carson-networks/budget-report/internal/handlers/v1/report"
	"github.com/carson-networks/budget-report/internal/handlers/v1/status"
	"github.com/carson-networks/budget-report/internal/logging"
	"github.com/carson-networks/budget-report/internal/service"
)

// Rest serves the report controller's view API.
type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Controller *controller.Controller
}

func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Report", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	report.NewGetReportHandler(r.Controller).Register(api)
	report.NewSetUserHandler(r.Controller).Register(api)
	report.NewSubmitReportHandler(r.Controller).Register(api)
	breakdown.NewBuildBreakdownHandler().Register(api)

	return mux
}

func (r *Rest) Serve(ctx context.Context) error {
	return serve(ctx, r.Logger, "HttpServer", r.Port, r.Handler())
}

// Backend serves the demo budget plan API the controller talks to.
type Backend struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (b *Backend) Handler() http.Handler {
	mux := http.NewServeMux()

	api := humago.New(mux, huma.DefaultConfig("Budget Planner", "1.0.0"))
	api.UseMiddleware(logging.Middleware(b.Logger))

	status.NewHealthHandler().Register(api)
	plan.NewGenerateBudgetPlanHandler(b.Service.Plan).Register(api)

	return mux
}

func (b *Backend) Serve(ctx context.Context) error {
	return serve(ctx, b.Logger, "BackendServer", b.Port, b.Handler())
}
