// Package dto holds the data transfer objects crossing the service boundary:
// write models consumed by repositories and read-optimized projections
// returned to callers.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized projection of an account.
type AccountRead struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           string
	InitialBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountCreate is the write model for creating an account.
type AccountCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           string
	InitialBalance decimal.Decimal
}

// AccountUpdate carries optional fields for a partial account update.
type AccountUpdate struct {
	Name           *string
	Type           *string
	InitialBalance *decimal.Decimal
}

// AccountBalance pairs an account with its derived balance. The balance is
// computed from transaction history and never persisted.
type AccountBalance struct {
	AccountID uuid.UUID
	Balance   decimal.Decimal
}
