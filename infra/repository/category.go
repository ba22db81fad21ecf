package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a gorm-backed CategoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, create dto.CategoryCreate) error {
	now := time.Now().UTC()
	model := Category{
		ID:          create.ID,
		Name:        create.Name,
		Description: create.Description,
		IsDefault:   create.IsDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// A duplicate name or a second default row violates a unique index and
	// surfaces as domain.ErrAlreadyExists.
	return mapGormError(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *categoryRepository) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryRead, error) {
	var model Category
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, mapGormError(err)
	}
	return categoryToRead(&model), nil
}

func (r *categoryRepository) FindDefault(ctx context.Context) (*dto.CategoryRead, error) {
	var model Category
	err := r.db.WithContext(ctx).First(&model, "is_default = ?", true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, mapGormError(err)
	}
	return categoryToRead(&model), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*dto.CategoryRead, error) {
	var models []Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	reads := make([]*dto.CategoryRead, 0, len(models))
	for i := range models {
		reads = append(reads, categoryToRead(&models[i]))
	}
	return reads, nil
}

func categoryToRead(m *Category) *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
