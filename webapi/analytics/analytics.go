// Package analytics exposes the reporting endpoints: monthly summaries,
// category spending breakdowns, savings rates, and trend series.
package analytics

import (
	"errors"
	"time"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/middleware"
	analyticssvc "github.com/fintrack/ledger/pkg/service/analytics"
	"github.com/fintrack/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// MonthlySummaryResponse is the API representation of one month's summary.
type MonthlySummaryResponse struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
}

// CategorySpendResponse is one entry of a spending breakdown.
type CategorySpendResponse struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       decimal.Decimal `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// SpendingByCategoryResponse is the full breakdown for a period.
type SpendingByCategoryResponse struct {
	TotalExpenses decimal.Decimal         `json:"total_expenses"`
	Categories    []CategorySpendResponse `json:"categories"`
}

// SavingsRateResponse reports the savings rate over a period.
type SavingsRateResponse struct {
	SavingsRate decimal.Decimal `json:"savings_rate"`
}

func toMonthlySummaryResponse(s dto.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:          s.Year,
		Month:         s.Month,
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		NetSavings:    s.NetSavings,
		SavingsRate:   s.SavingsRate,
	}
}

// Routes registers HTTP routes for analytics operations.
//
// Routes:
//   - GET /analytics/summary      : Monthly summary for ?year=&month=.
//   - GET /analytics/spending     : Spending by category for ?start_date=&end_date=.
//   - GET /analytics/savings-rate : Savings rate over ?start_date=&end_date=.
//   - GET /analytics/trends       : Per-month summaries over ?start_date=&end_date=.
func Routes(app *fiber.App, svc *analyticssvc.Service, cfg *config.App) {
	app.Get("/analytics/summary", middleware.JwtProtected(cfg.Jwt), GetMonthlySummary(svc))
	app.Get("/analytics/spending", middleware.JwtProtected(cfg.Jwt), GetSpendingByCategory(svc))
	app.Get("/analytics/savings-rate", middleware.JwtProtected(cfg.Jwt), GetSavingsRate(svc))
	app.Get("/analytics/trends", middleware.JwtProtected(cfg.Jwt), GetTrendAnalysis(svc))
}

// GetMonthlySummary returns the handler for one month's summary.
func GetMonthlySummary(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		year := c.QueryInt("year")
		month := c.QueryInt("month")
		if year < 1 || month < 1 || month > 12 {
			return common.ProblemDetailsJSON(c, "Invalid period",
				errors.New("year and month query parameters are required"), fiber.StatusBadRequest)
		}
		summary, err := svc.GetMonthlySummary(c.UserContext(), userID, year, time.Month(month))
		if err != nil {
			log.Errorf("Failed to compute monthly summary: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute monthly summary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Monthly summary computed", toMonthlySummaryResponse(summary))
	}
}

// GetSpendingByCategory returns the handler for the category breakdown.
func GetSpendingByCategory(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		start, end, err := parsePeriod(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid period", err, fiber.StatusBadRequest)
		}
		breakdown, err := svc.GetSpendingByCategory(c.UserContext(), userID, start, end)
		if err != nil {
			log.Errorf("Failed to compute spending by category: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute spending by category", err)
		}
		out := SpendingByCategoryResponse{
			TotalExpenses: breakdown.TotalExpenses,
			Categories:    make([]CategorySpendResponse, 0, len(breakdown.Categories)),
		}
		for _, spend := range breakdown.Categories {
			out.Categories = append(out.Categories, CategorySpendResponse{
				CategoryID:       spend.CategoryID.String(),
				CategoryName:     spend.CategoryName,
				Amount:           spend.Amount,
				Percentage:       spend.Percentage,
				TransactionCount: spend.TransactionCount,
			})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Spending by category computed", out)
	}
}

// GetSavingsRate returns the handler for the period savings rate.
func GetSavingsRate(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		start, end, err := parsePeriod(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid period", err, fiber.StatusBadRequest)
		}
		rate, err := svc.GetSavingsRate(c.UserContext(), userID, start, end)
		if err != nil {
			log.Errorf("Failed to compute savings rate: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute savings rate", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Savings rate computed", SavingsRateResponse{SavingsRate: rate})
	}
}

// GetTrendAnalysis returns the handler for the per-month trend series.
func GetTrendAnalysis(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UserIDFromContext(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		start, end, err := parsePeriod(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid period", err, fiber.StatusBadRequest)
		}
		series, err := svc.GetTrendAnalysis(c.UserContext(), userID, start, end)
		if err != nil {
			log.Errorf("Failed to compute trend analysis: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute trend analysis", err)
		}
		out := make([]MonthlySummaryResponse, 0, len(series))
		for _, s := range series {
			out = append(out, toMonthlySummaryResponse(s))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trend analysis computed", out)
	}
}

func parsePeriod(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		return start, end, errors.New("start_date must be a valid YYYY-MM-DD date")
	}
	end, err = time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		return start, end, errors.New("end_date must be a valid YYYY-MM-DD date")
	}
	return start, end, nil
}
