package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a gorm-backed TransactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// transactionRow is the join projection used by reads: a transaction plus its
// category name.
type transactionRow struct {
	Transaction
	CategoryName string
}

// ownedTransactions scopes a transaction query to the given user by joining
// through the account relation. Transactions have no owner column, so every
// read must pass through here.
func (r *transactionRepository) ownedTransactions(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", userID)
}

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	now := time.Now().UTC()
	model := Transaction{
		ID:          create.ID,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Description: create.Description,
		Date:        create.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return mapGormError(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *transactionRepository) Get(ctx context.Context, id, userID uuid.UUID) (*dto.TransactionRead, error) {
	var row transactionRow
	err := r.ownedTransactions(ctx, userID).
		Select("transactions.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, mapGormError(err)
	}
	return transactionToRead(&row), nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	q := r.ownedTransactions(ctx, userID).
		Select("transactions.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = transactions.category_id")

	if filter.AccountID != nil {
		q = q.Where("transactions.account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("transactions.transaction_date BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.MinAmount != nil && filter.MaxAmount != nil {
		q = q.Where("transactions.amount BETWEEN ? AND ?", *filter.MinAmount, *filter.MaxAmount)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var rows []transactionRow
	err := q.Order("transactions.transaction_date DESC, transactions.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	reads := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		reads = append(reads, transactionToRead(&rows[i]))
	}
	return reads, nil
}

func (r *transactionRepository) Update(ctx context.Context, id, userID uuid.UUID, update dto.TransactionUpdate) error {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if update.AccountID != nil {
		fields["account_id"] = *update.AccountID
	}
	if update.CategoryID != nil {
		fields["category_id"] = *update.CategoryID
	}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Date != nil {
		fields["transaction_date"] = *update.Date
	}
	// Ownership is checked through the account join in a subquery because
	// UPDATE ... JOIN is not portable through gorm's soft-delete scope.
	result := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ?", id).
		Where("account_id IN (?)",
			r.db.Model(&Account{}).Select("id").Where("user_id = ?", userID)).
		Updates(fields)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("account_id IN (?)",
			r.db.Model(&Account{}).Select("id").Where("user_id = ?", userID)).
		Delete(&Transaction{})
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) SumByAccount(ctx context.Context, accountID, userID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.ownedTransactions(ctx, userID).
		Select("COALESCE(SUM(transactions.amount), 0) AS total").
		Where("transactions.account_id = ?", accountID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, mapGormError(err)
	}
	return row.Total, nil
}

func (r *transactionRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.ownedTransactions(ctx, userID).
		Select("COALESCE(SUM(transactions.amount), 0) AS total").
		Where("accounts.deleted_at IS NULL").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, mapGormError(err)
	}
	return row.Total, nil
}

func (r *transactionRepository) HasActiveByAccount(ctx context.Context, accountID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.ownedTransactions(ctx, userID).
		Where("transactions.account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *transactionRepository) IncomeTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.signedTotal(ctx, userID, start, end,
		"COALESCE(SUM(transactions.amount), 0) AS total", "transactions.amount > 0")
}

func (r *transactionRepository) ExpenseTotal(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	// Negated so expenses come back as a non-negative magnitude.
	return r.signedTotal(ctx, userID, start, end,
		"COALESCE(SUM(-transactions.amount), 0) AS total", "transactions.amount < 0")
}

func (r *transactionRepository) signedTotal(ctx context.Context, userID uuid.UUID, start, end time.Time, selectExpr, signCond string) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.ownedTransactions(ctx, userID).
		Select(selectExpr).
		Where(signCond).
		Where("transactions.transaction_date BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, mapGormError(err)
	}
	return row.Total, nil
}

func (r *transactionRepository) SpendingByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]dto.CategorySpend, error) {
	var rows []struct {
		CategoryID       uuid.UUID
		CategoryName     string
		Amount           decimal.Decimal
		TransactionCount int
	}
	err := r.ownedTransactions(ctx, userID).
		Select("categories.id AS category_id, categories.name AS category_name, "+
			"SUM(-transactions.amount) AS amount, COUNT(*) AS transaction_count").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.amount < 0").
		Where("transactions.transaction_date BETWEEN ? AND ?", start, end).
		Group("categories.id, categories.name").
		Order("amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	spends := make([]dto.CategorySpend, 0, len(rows))
	for _, row := range rows {
		spends = append(spends, dto.CategorySpend{
			CategoryID:       row.CategoryID,
			CategoryName:     row.CategoryName,
			Amount:           row.Amount,
			TransactionCount: row.TransactionCount,
		})
	}
	return spends, nil
}

func (r *transactionRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]dto.MonthlyTotals, error) {
	var rows []struct {
		Year     int
		Month    int
		Income   decimal.Decimal
		Expenses decimal.Decimal
	}
	err := r.ownedTransactions(ctx, userID).
		Select("EXTRACT(YEAR FROM transactions.transaction_date)::int AS year, "+
			"EXTRACT(MONTH FROM transactions.transaction_date)::int AS month, "+
			"COALESCE(SUM(CASE WHEN transactions.amount > 0 THEN transactions.amount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN transactions.amount < 0 THEN -transactions.amount ELSE 0 END), 0) AS expenses").
		Where("transactions.transaction_date BETWEEN ? AND ?", start, end).
		Group("1, 2").
		Order("1, 2").
		Scan(&rows).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	totals := make([]dto.MonthlyTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dto.MonthlyTotals(row))
	}
	return totals, nil
}

func transactionToRead(row *transactionRow) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:           row.ID,
		AccountID:    row.AccountID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Amount:       row.Amount,
		Direction:    string(ledger.DirectionOf(money.New(row.Amount))),
		Description:  row.Description,
		Date:         row.Date,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
