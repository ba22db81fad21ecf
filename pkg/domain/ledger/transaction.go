package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionNotFound is returned when a transaction cannot be found for the caller.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidDirection is returned when a direction tag is outside the enumeration.
	ErrInvalidDirection = errors.New("invalid transaction direction")
	// ErrDescriptionRequired is returned when a transaction description is empty.
	ErrDescriptionRequired = errors.New("transaction description is required")
)

// Direction tags whether a magnitude represents money coming in or going out.
type Direction string

const (
	DirectionIncome  Direction = "INCOME"
	DirectionExpense Direction = "EXPENSE"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// Transaction is a single ledger entry. The sign of Amount encodes direction:
// positive for income, negative for expense. Zero amounts never exist because
// magnitudes are validated strictly positive at the boundary.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Amount     money.Money
	// Description of the entry, always trimmed.
	Description string
	// Date is the calendar date the transaction occurred, not a timestamp.
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DirectionOf derives the direction tag from a stored signed amount.
func DirectionOf(amount money.Money) Direction {
	if amount.IsPositive() {
		return DirectionIncome
	}
	return DirectionExpense
}

// SignedAmount converts a user-supplied magnitude and direction into the
// stored amount: +magnitude for income, -magnitude for expense. The magnitude
// must be strictly positive and is rounded half-up to minor-unit scale here,
// at the write boundary, never at read time.
func SignedAmount(magnitude decimal.Decimal, direction Direction) (money.Money, error) {
	if !direction.Valid() {
		return money.Money{}, ErrInvalidDirection
	}
	m, err := money.FromMagnitude(magnitude)
	if err != nil {
		return money.Money{}, err
	}
	if direction == DirectionExpense {
		return m.Negate(), nil
	}
	return m, nil
}

// NewTransaction validates and assembles a ledger entry. A zero date defaults
// to today.
func NewTransaction(
	accountID, categoryID uuid.UUID,
	amount money.Money,
	description string,
	date time.Time,
) (*Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
