package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fintrack/ledger/infra"
	infrarepo "github.com/fintrack/ledger/infra/repository"
	"github.com/fintrack/ledger/pkg/app"
	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/webapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to the ledger store: %w", err)
	}

	deps := config.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return fiberApp.Listen(addr)
}
