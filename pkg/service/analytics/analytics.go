// Package analytics derives reporting views from the transaction ledger:
// monthly income/expense summaries, category spending breakdowns, savings
// rates, and multi-month trend series.
//
// Every operation is a pure computation over an owner-scoped query snapshot;
// nothing here holds state between calls. Absent data resolves to zero
// values, never errors; errors are reserved for invalid requests.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service computes analytics for an acting user.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// GetMonthlySummary reports income, expenses, net savings, and savings rate
// for one calendar month. A month with no transactions yields all zeros.
func (s *Service) GetMonthlySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month) (summary dto.MonthlySummary, err error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		income, err := repo.IncomeTotal(ctx, userID, start, end)
		if err != nil {
			return err
		}
		expenses, err := repo.ExpenseTotal(ctx, userID, start, end)
		if err != nil {
			return err
		}
		summary = buildSummary(year, int(month), income, expenses)
		return nil
	})
	if err != nil {
		return dto.MonthlySummary{}, err
	}
	return summary, nil
}

// GetSpendingByCategory breaks the period's expenses down by category,
// ordered by descending amount. Each percentage is rounded independently;
// the set is not reconciled to sum to exactly 100.
func (s *Service) GetSpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (result dto.SpendingByCategory, err error) {
	if err := validateRange(start, end); err != nil {
		return dto.SpendingByCategory{}, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		spends, err := repo.SpendingByCategory(ctx, userID, start, end)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, spend := range spends {
			total = total.Add(spend.Amount)
		}
		for i := range spends {
			spends[i].Percentage = money.Percentage(spends[i].Amount, total)
		}
		result = dto.SpendingByCategory{TotalExpenses: total, Categories: spends}
		return nil
	})
	if err != nil {
		return dto.SpendingByCategory{}, err
	}
	return result, nil
}

// GetSavingsRate computes the savings rate over the whole period: income and
// expenses are summed across the full range, not per month.
func (s *Service) GetSavingsRate(ctx context.Context, userID uuid.UUID, start, end time.Time) (rate decimal.Decimal, err error) {
	if err := validateRange(start, end); err != nil {
		return decimal.Zero, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		income, err := repo.IncomeTotal(ctx, userID, start, end)
		if err != nil {
			return err
		}
		expenses, err := repo.ExpenseTotal(ctx, userID, start, end)
		if err != nil {
			return err
		}
		rate = savingsRate(income, expenses)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// GetTrendAnalysis returns one MonthlySummary per calendar month from the
// month of start to the month of end, inclusive, chronologically ascending.
// Months without data are synthesized as zero-valued entries, so the series
// length always equals the number of months spanned.
func (s *Service) GetTrendAnalysis(ctx context.Context, userID uuid.UUID, start, end time.Time) (series []dto.MonthlySummary, err error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		buckets, err := repo.MonthlyTotals(ctx, userID, start, end)
		if err != nil {
			return err
		}
		series = fillMissingMonths(buckets, start, end)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// buildSummary assembles a MonthlySummary from an income total and an expense
// magnitude. NetSavings may be negative; SavingsRate is zero without income.
func buildSummary(year, month int, income, expenses decimal.Decimal) dto.MonthlySummary {
	return dto.MonthlySummary{
		Year:          year,
		Month:         month,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    income.Sub(expenses),
		SavingsRate:   savingsRate(income, expenses),
	}
}

// savingsRate is (income - expenses) / income as a percentage rounded to two
// decimal places half-up. Zero income yields zero, never a division error.
func savingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	return money.Percentage(income.Sub(expenses), income)
}

// fillMissingMonths expands sparse monthly buckets into the complete ordered
// month list of the range. Callers may not infer month boundaries from sparse
// results, so gap-filling is mandatory.
func fillMissingMonths(buckets []dto.MonthlyTotals, start, end time.Time) []dto.MonthlySummary {
	type yearMonth struct {
		year  int
		month int
	}
	byMonth := make(map[yearMonth]dto.MonthlyTotals, len(buckets))
	for _, b := range buckets {
		byMonth[yearMonth{b.Year, b.Month}] = b
	}

	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var series []dto.MonthlySummary
	for cursor := first; !cursor.After(last); cursor = cursor.AddDate(0, 1, 0) {
		key := yearMonth{cursor.Year(), int(cursor.Month())}
		if bucket, ok := byMonth[key]; ok {
			series = append(series, buildSummary(bucket.Year, bucket.Month, bucket.Income, bucket.Expenses))
			continue
		}
		series = append(series, buildSummary(key.year, key.month, decimal.Zero, decimal.Zero))
	}
	return series
}

// validateRange rejects inverted date ranges before any query executes.
func validateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start date %s is after end date %s",
			domain.ErrValidation, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return nil
}
