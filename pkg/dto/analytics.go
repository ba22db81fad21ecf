package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary reports income, expenses, and savings for one calendar month.
// TotalExpenses is always a non-negative magnitude; NetSavings may be negative.
type MonthlySummary struct {
	Year          int
	Month         int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
	// SavingsRate is NetSavings/TotalIncome as a percentage rounded to 2
	// decimal places; zero when there is no income.
	SavingsRate decimal.Decimal
}

// CategorySpend is one entry of a category spending breakdown.
type CategorySpend struct {
	CategoryID   uuid.UUID
	CategoryName string
	// Amount is the summed expense magnitude for the category.
	Amount decimal.Decimal
	// Percentage of the period's total expenses, rounded independently per
	// category; the set is not forced to sum to exactly 100.
	Percentage       decimal.Decimal
	TransactionCount int
}

// SpendingByCategory is the full breakdown for a period, ordered by
// descending category amount.
type SpendingByCategory struct {
	TotalExpenses decimal.Decimal
	Categories    []CategorySpend
}

// MonthlyTotals is the raw grouped income/expense bucket for one calendar
// month as returned by the store, before gap-filling.
type MonthlyTotals struct {
	Year     int
	Month    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
}
