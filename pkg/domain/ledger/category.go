package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameRequired is returned when a category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")
)

// DefaultCategoryName is the name of the lazily created default category.
const DefaultCategoryName = "Uncategorized"

// DefaultCategoryDescription describes the default category.
const DefaultCategoryDescription = "Default category for uncategorized transactions"

// Category labels transactions. Exactly one category system-wide carries
// IsDefault=true; it is created on first use when a transaction arrives
// without an explicit category.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory validates and assembles a named category.
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewDefaultCategory assembles the singleton default category.
func NewDefaultCategory() *Category {
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.New(),
		Name:        DefaultCategoryName,
		Description: DefaultCategoryDescription,
		IsDefault:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
