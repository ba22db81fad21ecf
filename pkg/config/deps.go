package config

import (
	"log/slog"

	"github.com/fintrack/ledger/pkg/repository"
)

// Deps holds the infrastructure dependencies services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	Config *App
}
