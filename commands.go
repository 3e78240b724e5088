package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-report/api"
	"github.com/carson-networks/budget-report/internal/aggregator"
	"github.com/carson-networks/budget-report/internal/categories"
	"github.com/carson-networks/budget-report/internal/config"
	"github.com/carson-networks/budget-report/internal/controller"
	"github.com/carson-networks/budget-report/internal/logging"
	"github.com/carson-networks/budget-report/internal/operator"
	"github.com/carson-networks/budget-report/internal/reportclient"
	"github.com/carson-networks/budget-report/internal/service"
)

func serveCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the report view API",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, logger)
			if err != nil {
				return err
			}
			return runRest(c.Context, cfg, logger)
		},
	}
}

func backendCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "backend",
		Usage: "serve the demo budget plan backend",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, logger)
			if err != nil {
				return err
			}
			return runBackend(c.Context, cfg, logger)
		},
	}
}

func allCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "all",
		Usage: "serve the view API and the demo backend together",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, logger)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(c.Context)
			g.Go(func() error {
				return runBackend(ctx, cfg, logger)
			})
			g.Go(func() error {
				return runRest(ctx, cfg, logger)
			})
			return g.Wait()
		},
	}
}

func generateCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "run one report cycle and print the result",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user",
				Usage: "user identifier, defaults to report.user_id",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, logger)
			if err != nil {
				return err
			}

			ctrl := newController(cfg, logger)
			if c.IsSet("user") {
				ctrl.SetUserIdentifier(c.String("user"))
			}

			ctrl.Submit(c.Context)
			ctrl.Wait()

			view := ctrl.View()
			if view.State.Status != controller.StatusSuccess {
				return cli.Exit(view.State.Message, 1)
			}

			out := c.App.Writer
			fmt.Fprintln(out, view.State.Report)
			if view.Breakdown != nil {
				display := view.Breakdown.Summary.Display()
				fmt.Fprintf(out, "Total Income:   %s\n", display.TotalIncome)
				fmt.Fprintf(out, "Total Expenses: %s\n", display.TotalExpenses)
				fmt.Fprintf(out, "Net Savings:    %s\n", display.NetSavings)
				for _, slice := range view.Breakdown.Pie {
					fmt.Fprintf(out, "  %s\n", slice.Label)
				}
			}
			return nil
		},
	}
}

func loadConfig(c *cli.Context, logger *logrus.Logger) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := logging.ApplyLevel(logger, cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newController(cfg *config.Config, logger *logrus.Logger) *controller.Controller {
	client := reportclient.NewClient(cfg.Report.Endpoint, logger)
	return controller.New(client, logger,
		controller.WithCategoryProvider(newCategoryProvider(cfg, logger)),
		controller.WithTimeout(cfg.Report.Timeout),
		controller.WithUserIdentifier(cfg.Report.UserID),
	)
}

func newCategoryProvider(cfg *config.Config, logger *logrus.Logger) categories.Provider {
	if cfg.Categories.Source == config.CategorySourcePlanner {
		return categories.NewPlannerProvider(aggregator.NewMockClient(logger))
	}
	return categories.NewFixtureProvider()
}

func runRest(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	rest := &api.Rest{
		Logger:     logger,
		Port:       cfg.Server.Port,
		Controller: newController(cfg, logger),
	}
	return rest.Serve(ctx)
}

func runBackend(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	delegator := operator.NewOperatorDelegator(cfg.Backend.Workers, logger)
	delegator.Start()
	defer delegator.Stop()

	backend := &api.Backend{
		Logger:  logger,
		Port:    cfg.Backend.Port,
		Service: service.NewService(delegator, aggregator.NewMockClient(logger)),
	}
	return backend.Serve(ctx)
}
