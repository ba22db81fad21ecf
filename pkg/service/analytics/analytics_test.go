package analytics_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fintrack/ledger/internal/fixtures/mocks"
	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	analyticssvc "github.com/fintrack/ledger/pkg/service/analytics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(uow *mocks.MockUnitOfWork) *analyticssvc.Service {
	return analyticssvc.NewService(config.Deps{Uow: uow, Logger: slog.Default()})
}

func passthroughDo(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
}

func TestGetMonthlySummary(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()

	wantStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	txRepo.EXPECT().IncomeTotal(mock.Anything, userID, wantStart, wantEnd).
		Return(decimal.RequireFromString("3200.00"), nil).Once()
	txRepo.EXPECT().ExpenseTotal(mock.Anything, userID, wantStart, wantEnd).
		Return(decimal.RequireFromString("1850.00"), nil).Once()

	svc := newService(uow)
	summary, err := svc.GetMonthlySummary(context.Background(), userID, 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 6, summary.Month)
	assert.True(t, summary.NetSavings.Equal(decimal.RequireFromString("1350.00")), "got %s", summary.NetSavings)
	// 1350/3200 divided at 4 places, scaled to percent, rounded to 2 places.
	assert.True(t, summary.SavingsRate.Equal(decimal.RequireFromString("42.19")), "got %s", summary.SavingsRate)
}

func TestGetMonthlySummary_NoIncome(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	txRepo.EXPECT().IncomeTotal(mock.Anything, userID, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil).Once()
	txRepo.EXPECT().ExpenseTotal(mock.Anything, userID, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("100.00"), nil).Once()

	svc := newService(uow)
	summary, err := svc.GetMonthlySummary(context.Background(), userID, 2024, time.January)
	require.NoError(t, err)
	assert.True(t, summary.NetSavings.Equal(decimal.RequireFromString("-100.00")))
	assert.True(t, summary.SavingsRate.IsZero(), "rate without income must be zero, got %s", summary.SavingsRate)
}

func TestGetSpendingByCategory(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	txRepo.EXPECT().SpendingByCategory(mock.Anything, userID, start, end).Return([]dto.CategorySpend{
		{CategoryName: "Rent", Amount: decimal.RequireFromString("300.00"), TransactionCount: 1},
		{CategoryName: "Groceries", Amount: decimal.RequireFromString("100.00"), TransactionCount: 4},
	}, nil).Once()

	svc := newService(uow)
	breakdown, err := svc.GetSpendingByCategory(context.Background(), userID, start, end)
	require.NoError(t, err)
	assert.True(t, breakdown.TotalExpenses.Equal(decimal.RequireFromString("400.00")))
	require.Len(t, breakdown.Categories, 2)
	assert.True(t, breakdown.Categories[0].Percentage.Equal(decimal.RequireFromString("75")),
		"got %s", breakdown.Categories[0].Percentage)
	assert.True(t, breakdown.Categories[1].Percentage.Equal(decimal.RequireFromString("25")),
		"got %s", breakdown.Categories[1].Percentage)
	assert.Equal(t, 4, breakdown.Categories[1].TransactionCount)
}

func TestGetSpendingByCategory_EmptyPeriod(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	txRepo.EXPECT().SpendingByCategory(mock.Anything, userID, start, end).
		Return(nil, nil).Once()

	svc := newService(uow)
	breakdown, err := svc.GetSpendingByCategory(context.Background(), userID, start, end)
	require.NoError(t, err)
	assert.True(t, breakdown.TotalExpenses.IsZero())
	assert.Empty(t, breakdown.Categories)
}

func TestGetSpendingByCategory_InvertedRange(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userID := uuid.New()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Validation fails before any store access; no expectations on the uow.
	svc := newService(uow)
	_, err := svc.GetSpendingByCategory(context.Background(), userID, start, end)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetSavingsRate_WholePeriod(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	// Totals span the full range; the rate is not an average of monthly rates.
	txRepo.EXPECT().IncomeTotal(mock.Anything, userID, start, end).
		Return(decimal.RequireFromString("3200.00"), nil).Once()
	txRepo.EXPECT().ExpenseTotal(mock.Anything, userID, start, end).
		Return(decimal.RequireFromString("1850.00"), nil).Once()

	svc := newService(uow)
	rate, err := svc.GetSavingsRate(context.Background(), userID, start, end)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("42.19")), "got %s", rate)
}

func TestGetSavingsRate_InvertedRange(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	svc := newService(uow)
	_, err := svc.GetSavingsRate(context.Background(), uuid.New(),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetTrendAnalysis_FillsMissingMonths(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	// Only February has data; the other three months must be synthesized.
	txRepo.EXPECT().MonthlyTotals(mock.Anything, userID, start, end).Return([]dto.MonthlyTotals{
		{Year: 2024, Month: 2, Income: decimal.RequireFromString("3000.00"), Expenses: decimal.RequireFromString("1200.00")},
	}, nil).Once()

	svc := newService(uow)
	series, err := svc.GetTrendAnalysis(context.Background(), userID, start, end)
	require.NoError(t, err)
	require.Len(t, series, 4, "series length must equal the number of months spanned")

	for i, s := range series {
		assert.Equal(t, 2024, s.Year)
		assert.Equal(t, i+1, s.Month)
	}

	assert.True(t, series[0].TotalIncome.IsZero())
	assert.True(t, series[1].NetSavings.Equal(decimal.RequireFromString("1800.00")))
	assert.True(t, series[1].SavingsRate.Equal(decimal.RequireFromString("60")), "got %s", series[1].SavingsRate)
	assert.True(t, series[2].TotalExpenses.IsZero())
	assert.True(t, series[3].SavingsRate.IsZero())
}

func TestGetTrendAnalysis_YearBoundary(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	userID := uuid.New()
	start := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	passthroughDo(uow)
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	txRepo.EXPECT().MonthlyTotals(mock.Anything, userID, start, end).Return(nil, nil).Once()

	svc := newService(uow)
	series, err := svc.GetTrendAnalysis(context.Background(), userID, start, end)
	require.NoError(t, err)
	require.Len(t, series, 4)
	assert.Equal(t, 2023, series[0].Year)
	assert.Equal(t, 11, series[0].Month)
	assert.Equal(t, 2024, series[3].Year)
	assert.Equal(t, 2, series[3].Month)
}
