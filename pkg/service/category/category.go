// Package category provides category resolution for the transaction flow and
// the thin CRUD surface around it.
//
// The default category is not a singleton object held in memory; it is a
// lookup-or-create with a store-level uniqueness constraint, so concurrent
// first-use calls from any number of processes converge on one row.
package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service provides category operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// Resolve returns the category a new transaction should carry. With an
// explicit id the category must exist, otherwise domain.ErrNotFound. Without
// one, the default category is looked up and lazily created on first use.
//
// Resolution deliberately runs outside any surrounding transaction: a losing
// racer must be able to retry the lookup after its insert is rejected, which
// an aborted transaction would not allow.
func (s *Service) Resolve(ctx context.Context, categoryID *uuid.UUID) (*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		return repo.Get(ctx, *categoryID)
	}
	return s.resolveDefault(ctx, repo)
}

// resolveDefault finds the default category, creating it when absent. Creation
// is idempotent under concurrency: the store's uniqueness constraint lets one
// creator win and everyone else retries the lookup and uses the winning row.
func (s *Service) resolveDefault(ctx context.Context, repo repository.CategoryRepository) (*dto.CategoryRead, error) {
	c, err := repo.FindDefault(ctx)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	def := ledger.NewDefaultCategory()
	s.logger.Info("creating default category", "name", def.Name)
	createErr := repo.Create(ctx, dto.CategoryCreate{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		IsDefault:   true,
	})
	if createErr != nil && !errors.Is(createErr, domain.ErrAlreadyExists) {
		return nil, createErr
	}
	// Either we created it or a concurrent caller beat us to it.
	return repo.FindDefault(ctx)
}

// CreateCategory persists a named, non-default category. A duplicate name
// surfaces as domain.ErrAlreadyExists.
func (s *Service) CreateCategory(ctx context.Context, name, description string) (c *dto.CategoryRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		cat, err := ledger.NewCategory(name, description)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, dto.CategoryCreate{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}); err != nil {
			return err
		}
		c, err = repo.Get(ctx, cat.ID)
		return err
	})
	return c, err
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) (categories []*dto.CategoryRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		categories, err = repo.List(ctx)
		return err
	})
	return categories, err
}
