package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized projection of a ledger entry.
type TransactionRead struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Direction    string
	Description  string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransactionCreate is the write model for creating a ledger entry. Amount is
// already signed: positive income, negative expense.
type TransactionCreate struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// TransactionUpdate carries optional fields for a partial transaction update.
// Amount, when set, is already signed.
type TransactionUpdate struct {
	AccountID   *uuid.UUID
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Limit      int
	Offset     int
}
