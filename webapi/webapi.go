// Package webapi provides HTTP handlers and API endpoints for the ledger
// service. It is organized into sub-packages:
// - account: account CRUD and balance endpoints
// - transaction: ledger entry endpoints
// - category: category endpoints
// - analytics: reporting endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/fintrack/ledger/pkg/app"
	accountweb "github.com/fintrack/ledger/webapi/account"
	analyticsweb "github.com/fintrack/ledger/webapi/analytics"
	categoryweb "github.com/fintrack/ledger/webapi/category"
	"github.com/fintrack/ledger/webapi/common"
	transactionweb "github.com/fintrack/ledger/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, status)
		},
	})

	// Rate limiting keyed on the client IP, preferring X-Forwarded-For when
	// behind a proxy, then X-Real-IP, then the direct peer.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running")
	})

	accountweb.Routes(fiberApp, a.AccountService, a.Config)
	transactionweb.Routes(fiberApp, a.TransactionService, a.Config)
	categoryweb.Routes(fiberApp, a.CategoryService, a.Config)
	analyticsweb.Routes(fiberApp, a.AnalyticsService, a.Config)
	return fiberApp
}
