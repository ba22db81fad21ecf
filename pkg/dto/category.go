package dto

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRead is a read-optimized projection of a category.
type CategoryRead struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryCreate is the write model for creating a category.
type CategoryCreate struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsDefault   bool
}
