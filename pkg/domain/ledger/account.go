// Package ledger holds the core entities of the personal ledger: accounts,
// transactions, and categories. Balances are never stored on these types;
// they are derived from transaction history by the services layer.
package ledger

import (
	"errors"
	"time"

	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found for the caller.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountHasTransactions is returned when deleting an account that still
	// has non-deleted transactions.
	ErrAccountHasTransactions = errors.New("account has existing transactions")
	// ErrInvalidAccountType is returned when an account type is outside the enumeration.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrNegativeInitialBalance is returned when an account is created with a
	// negative initial balance.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
	// ErrAccountNameRequired is returned when an account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")
)

// AccountType enumerates the supported kinds of accounts.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeInvestment:
		return true
	}
	return false
}

// Account is an owner-scoped container for transactions.
//
// Invariants:
//   - An account always belongs to exactly one user.
//   - InitialBalance is non-negative at creation.
//   - The current balance is never stored; it is always
//     initial balance + sum of non-deleted transaction amounts.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           AccountType
	InitialBalance money.Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Builder provides a fluent API for constructing Account instances, keeping
// invariant checks in one place.
type Builder struct {
	id             uuid.UUID
	userID         uuid.UUID
	name           string
	accountType    AccountType
	initialBalance money.Money
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAccount creates a Builder with a fresh ID and creation timestamp.
func NewAccount() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:             uuid.New(),
		accountType:    AccountTypeChecking,
		initialBalance: money.Zero(),
		createdAt:      now,
		updatedAt:      now,
	}
}

// WithID sets the ID for the account being built. Primarily for hydration.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owning user. This is a mandatory field.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithName sets the display name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithType sets the account type.
func (b *Builder) WithType(t AccountType) *Builder {
	b.accountType = t
	return b
}

// WithInitialBalance sets the initial balance.
func (b *Builder) WithInitialBalance(m money.Money) *Builder {
	b.initialBalance = m
	return b
}

// WithCreatedAt sets the creation timestamp. Primarily for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp. Primarily for hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates all invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.userID == uuid.Nil {
		return nil, errors.New("userID is required")
	}
	if b.name == "" {
		return nil, ErrAccountNameRequired
	}
	if !b.accountType.Valid() {
		return nil, ErrInvalidAccountType
	}
	if b.initialBalance.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}
	return &Account{
		ID:             b.id,
		UserID:         b.userID,
		Name:           b.name,
		Type:           b.accountType,
		InitialBalance: b.initialBalance,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.updatedAt,
	}, nil
}
