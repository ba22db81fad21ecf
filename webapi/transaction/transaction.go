package transaction

import (
	"time"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/middleware"
	transactionsvc "github.com/fintrack/ledger/pkg/service/transaction"
	"github.com/fintrack/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for transaction operations.
//
// Routes:
//   - POST   /transactions       : Record a ledger entry.
//   - GET    /transactions       : List entries, filterable via query params.
//   - GET    /transactions/:id   : Fetch one entry.
//   - PUT    /transactions/:id   : Partially update an entry.
//   - DELETE /transactions/:id   : Soft-delete an entry.
func Routes(app *fiber.App, svc *transactionsvc.Service, cfg *config.App) {
	app.Post("/transactions", middleware.JwtProtected(cfg.Jwt), CreateTransaction(svc))
	app.Get("/transactions", middleware.JwtProtected(cfg.Jwt), ListTransactions(svc))
	app.Get("/transactions/:id", middleware.JwtProtected(cfg.Jwt), GetTransaction(svc))
	app.Put("/transactions/:id", middleware.JwtProtected(cfg.Jwt), UpdateTransaction(svc))
	app.Delete("/transactions/:id", middleware.JwtProtected(cfg.Jwt), DeleteTransaction(svc))
}

// CreateTransaction returns the handler that records a ledger entry for the
// acting user.
func CreateTransaction(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		create := transactionsvc.Create{
			AccountID:   accountID,
			Magnitude:   input.Amount,
			Direction:   ledger.Direction(input.Direction),
			Description: input.Description,
		}
		if input.CategoryID != nil {
			categoryID, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid category ID", err, fiber.StatusBadRequest)
			}
			create.CategoryID = &categoryID
		}
		if input.Date != "" {
			date, err := time.Parse(dateLayout, input.Date)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid date", err, fiber.StatusBadRequest)
			}
			create.Date = date
		}
		t, err := svc.CreateTransaction(c.UserContext(), userID, create)
		if err != nil {
			log.Errorf("Failed to create transaction: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", ToTransactionResponse(t))
	}
}

// ListTransactions returns the handler that lists the acting user's entries.
// Query params: account_id, category_id, start_date, end_date, min_amount,
// max_amount, limit, offset.
func ListTransactions(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		filter, err := parseFilter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}
		ts, err := svc.ListTransactions(c.UserContext(), userID, filter)
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", ToTransactionResponses(ts))
	}
}

// GetTransaction returns the handler that fetches one entry by id.
func GetTransaction(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		t, err := svc.GetTransaction(c.UserContext(), id, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction fetched", ToTransactionResponse(t))
	}
}

// UpdateTransaction returns the handler that applies a partial update.
func UpdateTransaction(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateTransactionRequest](c)
		if input == nil {
			return err
		}
		update := transactionsvc.Update{Description: input.Description}
		if input.AccountID != nil {
			accountID, err := uuid.Parse(*input.AccountID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
			}
			update.AccountID = &accountID
		}
		if input.CategoryID != nil {
			categoryID, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid category ID", err, fiber.StatusBadRequest)
			}
			update.CategoryID = &categoryID
		}
		if input.Amount != nil {
			update.Magnitude = input.Amount
		}
		if input.Direction != nil {
			direction := ledger.Direction(*input.Direction)
			update.Direction = &direction
		}
		if input.Date != nil {
			date, err := time.Parse(dateLayout, *input.Date)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid date", err, fiber.StatusBadRequest)
			}
			update.Date = &date
		}
		t, err := svc.UpdateTransaction(c.UserContext(), id, userID, update)
		if err != nil {
			log.Errorf("Failed to update transaction %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", ToTransactionResponse(t))
	}
}

// DeleteTransaction returns the handler that soft-deletes an entry.
func DeleteTransaction(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		if err := svc.DeleteTransaction(c.UserContext(), id, userID); err != nil {
			log.Errorf("Failed to delete transaction %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}

func parseFilter(c *fiber.Ctx) (dto.TransactionFilter, error) {
	var filter dto.TransactionFilter

	if raw := c.Query("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.AccountID = &id
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("start_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &date
	}
	if raw := c.Query("end_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &date
	}
	if raw := c.Query("min_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &amount
	}
	if raw := c.Query("max_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &amount
	}
	filter.Limit = c.QueryInt("limit")
	filter.Offset = c.QueryInt("offset")
	return filter, nil
}
