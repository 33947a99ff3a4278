package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/budget"
	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/logger"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(false); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Interactive output owns stdout; diagnostics go to stderr at debug only.
	log := zerolog.Nop()
	if cfg.LogLevel == "debug" {
		log = logger.New(cfg.LogLevel, cfg.LogPretty)
	}

	finance := services.NewFinanceManager(
		services.WithStartingNumber(cfg.AccountNumberStart),
		services.WithLogger(log),
	)
	budgets := budget.NewManager(budget.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.New(os.Stdin, os.Stdout, finance, budgets,
		cli.WithHistorySize(cfg.HistoryPageSize),
		cli.WithLogger(log),
	)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
