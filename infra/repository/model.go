// Package repository contains the gorm-backed implementations of the ledger
// store ports defined in pkg/repository.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is the persisted form of a ledger account. The current balance is
// never a column here; it is always derived from transaction history.
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"size:100;not null"`
	Type           string          `gorm:"size:20;not null"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
	Transactions   []Transaction
}

// Category is the persisted form of a category. A partial unique index on
// is_default (created at migration time) guarantees at most one default row.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;uniqueIndex;not null"`
	Description string    `gorm:"size:255"`
	IsDefault   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Transaction is the persisted form of a ledger entry. There is no owner
// column; ownership is always resolved through the account relation.
// Deletion is a flag flip via DeletedAt, never a row removal.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Description string          `gorm:"size:255;not null"`
	Date        time.Time       `gorm:"column:transaction_date;type:date;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
