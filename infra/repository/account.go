package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns a gorm-backed AccountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	now := time.Now().UTC()
	model := Account{
		ID:             create.ID,
		UserID:         create.UserID,
		Name:           create.Name,
		Type:           create.Type,
		InitialBalance: create.InitialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return mapGormError(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *accountRepository) Get(ctx context.Context, id, userID uuid.UUID) (*dto.AccountRead, error) {
	var model Account
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, mapGormError(err)
	}
	return accountToRead(&model), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	var models []Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	reads := make([]*dto.AccountRead, 0, len(models))
	for i := range models {
		reads = append(reads, accountToRead(&models[i]))
	}
	return reads, nil
}

func (r *accountRepository) Update(ctx context.Context, id, userID uuid.UUID, update dto.AccountUpdate) error {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Type != nil {
		fields["type"] = *update.Type
	}
	if update.InitialBalance != nil {
		fields["initial_balance"] = *update.InitialBalance
	}
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Account{})
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) SumInitialBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Select("COALESCE(SUM(initial_balance), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, mapGormError(err)
	}
	return row.Total, nil
}

func accountToRead(m *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           m.Type,
		InitialBalance: m.InitialBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
