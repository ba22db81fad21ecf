// Package app wires the service layer together from its dependencies.
package app

import (
	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/service/account"
	"github.com/fintrack/ledger/pkg/service/analytics"
	"github.com/fintrack/ledger/pkg/service/category"
	"github.com/fintrack/ledger/pkg/service/transaction"
)

// App holds the assembled services plus the configuration the HTTP layer
// needs for middleware.
type App struct {
	Deps   config.Deps
	Config *config.App

	AccountService     *account.Service
	CategoryService    *category.Service
	TransactionService *transaction.Service
	AnalyticsService   *analytics.Service
}

// New assembles the application. The category service is shared with the
// transaction service, which uses it to resolve categories on writes.
func New(deps config.Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.AccountService = account.NewService(deps)
	app.CategoryService = category.NewService(deps)
	app.TransactionService = transaction.NewService(deps, app.CategoryService)
	app.AnalyticsService = analytics.NewService(deps)
	return app
}
