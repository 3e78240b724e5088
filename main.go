package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-report/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "budget-report",
		Usage: "request budget reports and serve their view",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				EnvVars: []string{"BUDGET_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(logger),
			backendCommand(logger),
			allCommand(logger),
			generateCommand(logger),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.WithError(err).Error("budget-report.main.exit")
		stop()
		os.Exit(1)
	}
}
