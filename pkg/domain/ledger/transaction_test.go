package ledger_test

import (
	"testing"
	"time"

	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name      string
		magnitude string
		direction ledger.Direction
		want      string
		wantErr   error
	}{
		{"income stays positive", "3200.00", ledger.DirectionIncome, "3200.00", nil},
		{"expense is negated", "1850.00", ledger.DirectionExpense, "-1850.00", nil},
		{"expense rounds then negates", "123.456", ledger.DirectionExpense, "-123.46", nil},
		{"zero magnitude rejected", "0", ledger.DirectionIncome, "", money.ErrNonPositiveMagnitude},
		{"negative magnitude rejected", "-10", ledger.DirectionExpense, "", money.ErrNonPositiveMagnitude},
		{"unknown direction rejected", "10", ledger.Direction("TRANSFER"), "", ledger.ErrInvalidDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			magnitude, err := decimal.NewFromString(tt.magnitude)
			require.NoError(t, err)
			got, err := ledger.SignedAmount(magnitude, tt.direction)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDirectionOf(t *testing.T) {
	income, err := money.FromString("100.00")
	require.NoError(t, err)
	assert.Equal(t, ledger.DirectionIncome, ledger.DirectionOf(income))
	assert.Equal(t, ledger.DirectionExpense, ledger.DirectionOf(income.Negate()))
}

func TestNewTransaction(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()
	amount, err := money.FromString("50.00")
	require.NoError(t, err)

	t.Run("trims description", func(t *testing.T) {
		entry, err := ledger.NewTransaction(accountID, categoryID, amount, "  groceries  ", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, "groceries", entry.Description)
	})

	t.Run("blank description rejected", func(t *testing.T) {
		_, err := ledger.NewTransaction(accountID, categoryID, amount, "   ", time.Time{})
		require.ErrorIs(t, err, ledger.ErrDescriptionRequired)
	})

	t.Run("zero date defaults to today", func(t *testing.T) {
		entry, err := ledger.NewTransaction(accountID, categoryID, amount, "rent", time.Time{})
		require.NoError(t, err)
		today := time.Now().UTC().Truncate(24 * time.Hour)
		assert.Equal(t, today, entry.Date)
	})

	t.Run("explicit date preserved", func(t *testing.T) {
		date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		entry, err := ledger.NewTransaction(accountID, categoryID, amount, "rent", date)
		require.NoError(t, err)
		assert.Equal(t, date, entry.Date)
	})
}
