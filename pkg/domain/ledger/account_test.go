package ledger_test

import (
	"testing"

	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountType_Valid(t *testing.T) {
	for _, at := range []ledger.AccountType{
		ledger.AccountTypeChecking,
		ledger.AccountTypeSavings,
		ledger.AccountTypeCredit,
		ledger.AccountTypeInvestment,
	} {
		assert.True(t, at.Valid(), string(at))
	}
	assert.False(t, ledger.AccountType("WALLET").Valid())
	assert.False(t, ledger.AccountType("").Valid())
}

func TestAccountBuilder_Build(t *testing.T) {
	userID := uuid.New()

	t.Run("valid account", func(t *testing.T) {
		a, err := ledger.NewAccount().
			WithUserID(userID).
			WithName("Main Checking").
			WithType(ledger.AccountTypeChecking).
			WithInitialBalance(money.New(decimal.NewFromInt(1000))).
			Build()
		require.NoError(t, err)
		assert.Equal(t, userID, a.UserID)
		assert.Equal(t, "Main Checking", a.Name)
		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.Equal(t, "1000.00", a.InitialBalance.String())
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := ledger.NewAccount().WithName("Orphan").Build()
		require.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := ledger.NewAccount().WithUserID(userID).Build()
		require.ErrorIs(t, err, ledger.ErrAccountNameRequired)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := ledger.NewAccount().
			WithUserID(userID).
			WithName("Bad Type").
			WithType(ledger.AccountType("WALLET")).
			Build()
		require.ErrorIs(t, err, ledger.ErrInvalidAccountType)
	})

	t.Run("negative initial balance", func(t *testing.T) {
		_, err := ledger.NewAccount().
			WithUserID(userID).
			WithName("Overdrawn").
			WithInitialBalance(money.New(decimal.NewFromInt(-5))).
			Build()
		require.ErrorIs(t, err, ledger.ErrNegativeInitialBalance)
	})
}

func TestNewCategory(t *testing.T) {
	c, err := ledger.NewCategory("Groceries", "weekly shopping")
	require.NoError(t, err)
	assert.False(t, c.IsDefault)

	_, err = ledger.NewCategory("", "")
	require.ErrorIs(t, err, ledger.ErrCategoryNameRequired)

	def := ledger.NewDefaultCategory()
	assert.True(t, def.IsDefault)
	assert.Equal(t, ledger.DefaultCategoryName, def.Name)
	assert.Equal(t, ledger.DefaultCategoryDescription, def.Description)
}
