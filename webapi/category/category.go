// Package category exposes the small category surface: listing and creation.
// Categories are shared across users; there is no update or delete.
package category

import (
	"time"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/middleware"
	categorysvc "github.com/fintrack/ledger/pkg/service/category"
	"github.com/fintrack/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse maps a category read model to its API representation.
func ToCategoryResponse(cat *dto.CategoryRead) *CategoryResponse {
	if cat == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Description: cat.Description,
		IsDefault:   cat.IsDefault,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// Routes registers HTTP routes for category operations.
//
// Routes:
//   - POST /categories : Create a category.
//   - GET  /categories : List all categories ordered by name.
func Routes(app *fiber.App, svc *categorysvc.Service, cfg *config.App) {
	app.Post("/categories", middleware.JwtProtected(cfg.Jwt), CreateCategory(svc))
	app.Get("/categories", middleware.JwtProtected(cfg.Jwt), ListCategories(svc))
}

// CreateCategory returns the handler that creates a category. Duplicate names
// are refused with a conflict.
func CreateCategory(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := middleware.UserIDFromContext(c); err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateCategoryRequest](c)
		if input == nil {
			return err
		}
		cat, err := svc.CreateCategory(c.UserContext(), input.Name, input.Description)
		if err != nil {
			log.Errorf("Failed to create category: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create category", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Category created", ToCategoryResponse(cat))
	}
}

// ListCategories returns the handler that lists all categories.
func ListCategories(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := middleware.UserIDFromContext(c); err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		categories, err := svc.ListCategories(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list categories: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list categories", err)
		}
		out := make([]*CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			out = append(out, ToCategoryResponse(cat))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories fetched", out)
	}
}
