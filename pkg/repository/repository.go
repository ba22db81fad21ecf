// Package repository defines the ports to the ledger store. Implementations
// live under infra/repository; services depend only on these interfaces.
package repository

import (
	"context"
	"time"

	"github.com/fintrack/ledger/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines owner-scoped account data access. Every read is
// filtered by user id so one user's accounts are invisible to another.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) error
	// Get returns the non-deleted account owned by userID, or domain.ErrNotFound.
	Get(ctx context.Context, id, userID uuid.UUID) (*dto.AccountRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)
	Update(ctx context.Context, id, userID uuid.UUID, update dto.AccountUpdate) error
	// SoftDelete flags the account deleted; the row is never removed.
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
	// SumInitialBalances sums initial balances across the user's non-deleted accounts.
	SumInitialBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// TransactionRepository defines transaction data access plus the aggregate
// queries behind balances and analytics. Transactions carry no owner column;
// every query joins through the owning account to scope by user.
type TransactionRepository interface {
	Create(ctx context.Context, create dto.TransactionCreate) error
	// Get returns the non-deleted transaction reachable through an account
	// owned by userID, or domain.ErrNotFound.
	Get(ctx context.Context, id, userID uuid.UUID) (*dto.TransactionRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)
	Update(ctx context.Context, id, userID uuid.UUID, update dto.TransactionUpdate) error
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error

	// SumByAccount sums non-deleted transaction amounts on one account;
	// an empty transaction set sums to zero.
	SumByAccount(ctx context.Context, accountID, userID uuid.UUID) (decimal.Decimal, error)
	// SumByUser sums non-deleted transaction amounts across all of the user's
	// non-deleted accounts.
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// HasActiveByAccount reports whether any non-deleted transaction exists on
	// the account. Used by the account deletion guard.
	HasActiveByAccount(ctx context.Context, accountID, userID uuid.UUID) (bool, error)

	// IncomeTotal sums positive amounts in [start, end], zero if none.
	IncomeTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	// ExpenseTotal sums negative amounts in [start, end] and is reported as a
	// non-negative magnitude, zero if none.
	ExpenseTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	// SpendingByCategory groups expense magnitudes by category in [start, end],
	// ordered by descending amount.
	SpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]dto.CategorySpend, error)
	// MonthlyTotals groups income/expense magnitudes by calendar month in
	// [start, end], ordered chronologically. Months with no transactions are
	// absent; gap-filling is the analytics engine's job.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]dto.MonthlyTotals, error)
}

// CategoryRepository defines category data access. Categories are global, not
// owner-scoped.
type CategoryRepository interface {
	// Create inserts a category. Inserting a second default category fails
	// with domain.ErrAlreadyExists via the store's uniqueness constraint.
	Create(ctx context.Context, create dto.CategoryCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryRead, error)
	// FindDefault returns the category flagged is-default, or domain.ErrNotFound.
	FindDefault(ctx context.Context) (*dto.CategoryRead, error)
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*dto.CategoryRead, error)
}
