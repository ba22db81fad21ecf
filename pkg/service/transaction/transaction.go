// Package transaction provides the lifecycle of ledger entries: creation via
// the categorization flow, partial update, listing, and soft deletion.
//
// Amount handling: callers supply an always-positive magnitude plus a
// direction tag; the stored amount is signed here at the write boundary and
// rounded half-up to minor-unit scale. Read paths never round.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/fintrack/ledger/pkg/service/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Create is the input for creating a ledger entry.
type Create struct {
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Magnitude   decimal.Decimal
	Direction   ledger.Direction
	Description string
	Date        time.Time
}

// Update is the input for a partial update. Magnitude and Direction apply
// only when both are present.
type Update struct {
	AccountID   *uuid.UUID
	CategoryID  *uuid.UUID
	Magnitude   *decimal.Decimal
	Direction   *ledger.Direction
	Description *string
	Date        *time.Time
}

// Service provides transaction operations scoped to an acting user.
type Service struct {
	uow        repository.UnitOfWork
	categories *category.Service
	logger     *slog.Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(deps config.Deps, categories *category.Service) *Service {
	return &Service{uow: deps.Uow, categories: categories, logger: deps.Logger}
}

// CreateTransaction validates ownership of the target account, resolves the
// category (falling back to the lazily created default), signs the magnitude,
// and persists the entry.
func (s *Service) CreateTransaction(ctx context.Context, userID uuid.UUID, create Create) (t *dto.TransactionRead, err error) {
	// Resolved before the write transaction so default-category creation can
	// retry on a lost race.
	cat, err := s.categories.Resolve(ctx, create.CategoryID)
	if err != nil {
		return nil, err
	}

	amount, err := ledger.SignedAmount(create.Magnitude, create.Direction)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if _, err := accountRepo.Get(ctx, create.AccountID, userID); err != nil {
			return err
		}
		entry, err := ledger.NewTransaction(create.AccountID, cat.ID, amount, create.Description, create.Date)
		if err != nil {
			return err
		}
		if err := txRepo.Create(ctx, dto.TransactionCreate{
			ID:          entry.ID,
			AccountID:   entry.AccountID,
			CategoryID:  entry.CategoryID,
			Amount:      entry.Amount.Decimal(),
			Description: entry.Description,
			Date:        entry.Date,
		}); err != nil {
			return err
		}
		t, err = txRepo.Get(ctx, entry.ID, userID)
		return err
	})
	if err != nil {
		s.logger.Error("create transaction failed", "userID", userID, "accountID", create.AccountID, "error", err)
		return nil, err
	}
	return t, nil
}

// GetTransaction returns the user's transaction or domain.ErrNotFound.
func (s *Service) GetTransaction(ctx context.Context, id, userID uuid.UUID) (t *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		t, err = repo.Get(ctx, id, userID)
		return err
	})
	return t, err
}

// ListTransactions returns the user's transactions, newest first, narrowed by
// the filter.
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, filter dto.TransactionFilter) (ts []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		ts, err = repo.ListByUser(ctx, userID, filter)
		return err
	})
	return ts, err
}

// UpdateTransaction applies a partial update. A new account or category
// reference is re-resolved with the same ownership and existence rules as at
// create time.
func (s *Service) UpdateTransaction(ctx context.Context, id, userID uuid.UUID, update Update) (t *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		categoryRepo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}

		patch := dto.TransactionUpdate{
			Description: update.Description,
			Date:        update.Date,
		}
		if update.Magnitude != nil && update.Direction != nil {
			amount, err := ledger.SignedAmount(*update.Magnitude, *update.Direction)
			if err != nil {
				return err
			}
			signed := amount.Decimal()
			patch.Amount = &signed
		}
		if update.AccountID != nil {
			if _, err := accountRepo.Get(ctx, *update.AccountID, userID); err != nil {
				return err
			}
			patch.AccountID = update.AccountID
		}
		if update.CategoryID != nil {
			if _, err := categoryRepo.Get(ctx, *update.CategoryID); err != nil {
				return err
			}
			patch.CategoryID = update.CategoryID
		}

		if err := txRepo.Update(ctx, id, userID, patch); err != nil {
			return err
		}
		t, err = txRepo.Get(ctx, id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTransaction flips the soft-delete flag; the row is retained for audit
// history and balances recompute without it.
func (s *Service) DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		return repo.SoftDelete(ctx, id, userID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("transaction soft-deleted", "transactionID", id, "userID", userID)
	return nil
}
