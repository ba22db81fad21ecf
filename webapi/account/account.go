package account

import (
	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/middleware"
	accountsvc "github.com/fintrack/ledger/pkg/service/account"
	"github.com/fintrack/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers HTTP routes for account operations. All routes require a
// verified token; the acting user is read from it, never from the payload.
//
// Routes:
//   - POST   /accounts               : Create an account.
//   - GET    /accounts               : List the user's accounts.
//   - GET    /accounts/balance       : Total balance across all accounts.
//   - GET    /accounts/:id           : Fetch one account.
//   - PUT    /accounts/:id           : Update an account.
//   - DELETE /accounts/:id           : Soft-delete an account.
//   - GET    /accounts/:id/balance   : Derived balance of one account.
func Routes(app *fiber.App, svc *accountsvc.Service, cfg *config.App) {
	app.Post("/accounts", middleware.JwtProtected(cfg.Jwt), CreateAccount(svc))
	app.Get("/accounts", middleware.JwtProtected(cfg.Jwt), ListAccounts(svc))
	// Registered before /accounts/:id so "balance" is not parsed as an id.
	app.Get("/accounts/balance", middleware.JwtProtected(cfg.Jwt), GetTotalBalance(svc))
	app.Get("/accounts/:id", middleware.JwtProtected(cfg.Jwt), GetAccount(svc))
	app.Put("/accounts/:id", middleware.JwtProtected(cfg.Jwt), UpdateAccount(svc))
	app.Delete("/accounts/:id", middleware.JwtProtected(cfg.Jwt), DeleteAccount(svc))
	app.Get("/accounts/:id/balance", middleware.JwtProtected(cfg.Jwt), GetBalance(svc))
}

// CreateAccount returns the handler that creates an account for the acting user.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.CreateAccount(c.UserContext(), userID, dto.AccountCreate{
			Name:           input.Name,
			Type:           input.Type,
			InitialBalance: input.InitialBalance,
		})
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountResponse(a))
	}
}

// ListAccounts returns the handler that lists the acting user's accounts.
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		accounts, err := svc.ListAccounts(c.UserContext(), userID)
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", ToAccountResponses(accounts))
	}
}

// GetAccount returns the handler that fetches one account by id.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		a, err := svc.GetAccount(c.UserContext(), accountID, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", ToAccountResponse(a))
	}
}

// UpdateAccount returns the handler that applies a partial account update.
func UpdateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.UpdateAccount(c.UserContext(), accountID, userID, dto.AccountUpdate{
			Name:           input.Name,
			Type:           input.Type,
			InitialBalance: input.InitialBalance,
		})
		if err != nil {
			log.Errorf("Failed to update account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", ToAccountResponse(a))
	}
}

// DeleteAccount returns the handler that soft-deletes an account. Accounts
// with active transactions are refused with a conflict.
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteAccount(c.UserContext(), accountID, userID); err != nil {
			log.Errorf("Failed to delete account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}

// GetBalance returns the handler that reports one account's derived balance.
func GetBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		balance, err := svc.GetBalance(c.UserContext(), accountID, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", BalanceResponse{
			AccountID: accountID.String(),
			Balance:   balance,
		})
	}
}

// GetTotalBalance returns the handler that reports the user's balance across
// all non-deleted accounts.
func GetTotalBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		total, err := svc.GetTotalBalance(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch total balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Total balance fetched", BalanceResponse{Balance: total})
	}
}
