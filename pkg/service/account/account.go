// Package account provides business logic for ledger accounts: creation,
// listing, updates, guarded soft deletion, and balance derivation.
//
// Balances are never stored. Every balance read recomputes
// initial balance + sum of non-deleted transaction amounts, so edits and
// soft deletes are reflected immediately.
package account

import (
	"context"
	"log/slog"

	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides account operations scoped to an acting user.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// CreateAccount validates and persists a new account for the user.
func (s *Service) CreateAccount(ctx context.Context, userID uuid.UUID, create dto.AccountCreate) (a *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := ledger.NewAccount().
			WithUserID(userID).
			WithName(create.Name).
			WithType(ledger.AccountType(create.Type)).
			WithInitialBalance(money.New(create.InitialBalance)).
			Build()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, dto.AccountCreate{
			ID:             acct.ID,
			UserID:         acct.UserID,
			Name:           acct.Name,
			Type:           string(acct.Type),
			InitialBalance: acct.InitialBalance.Decimal(),
		}); err != nil {
			return err
		}
		a, err = repo.Get(ctx, acct.ID, userID)
		return err
	})
	if err != nil {
		s.logger.Error("create account failed", "userID", userID, "error", err)
		return nil, err
	}
	return a, nil
}

// GetAccount returns the user's account or domain.ErrNotFound.
func (s *Service) GetAccount(ctx context.Context, accountID, userID uuid.UUID) (a *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, accountID, userID)
		return err
	})
	return a, err
}

// ListAccounts returns the user's non-deleted accounts, newest first.
func (s *Service) ListAccounts(ctx context.Context, userID uuid.UUID) (accounts []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.ListByUser(ctx, userID)
		return err
	})
	return accounts, err
}

// UpdateAccount applies a partial update to the user's account.
func (s *Service) UpdateAccount(ctx context.Context, accountID, userID uuid.UUID, update dto.AccountUpdate) (a *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if update.Type != nil && !ledger.AccountType(*update.Type).Valid() {
			return ledger.ErrInvalidAccountType
		}
		if update.InitialBalance != nil && update.InitialBalance.IsNegative() {
			return ledger.ErrNegativeInitialBalance
		}
		if update.InitialBalance != nil {
			rounded := money.New(*update.InitialBalance).Decimal()
			update.InitialBalance = &rounded
		}
		if err := repo.Update(ctx, accountID, userID, update); err != nil {
			return err
		}
		a, err = repo.Get(ctx, accountID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAccount soft-deletes the user's account. An account that still has
// non-deleted transactions cannot be deleted; financial history must stay
// auditable through its account.
func (s *Service) DeleteAccount(ctx context.Context, accountID, userID uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if _, err := accountRepo.Get(ctx, accountID, userID); err != nil {
			return err
		}
		hasActive, err := txRepo.HasActiveByAccount(ctx, accountID, userID)
		if err != nil {
			return err
		}
		if hasActive {
			return ledger.ErrAccountHasTransactions
		}
		return accountRepo.SoftDelete(ctx, accountID, userID)
	})
	if err != nil {
		s.logger.Error("delete account failed", "accountID", accountID, "userID", userID, "error", err)
		return err
	}
	s.logger.Info("account soft-deleted", "accountID", accountID, "userID", userID)
	return nil
}

// GetBalance derives the current balance of the user's account:
// initial balance + sum of non-deleted transaction amounts. An account with
// no transactions sums to zero, not an error.
func (s *Service) GetBalance(ctx context.Context, accountID, userID uuid.UUID) (balance decimal.Decimal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		acct, err := accountRepo.Get(ctx, accountID, userID)
		if err != nil {
			return err
		}
		sum, err := txRepo.SumByAccount(ctx, accountID, userID)
		if err != nil {
			return err
		}
		balance = acct.InitialBalance.Add(sum)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// GetTotalBalance derives the user's total balance across all non-deleted
// accounts with a single cross-account aggregate. The result is required to
// equal the sum of per-account GetBalance results.
func (s *Service) GetTotalBalance(ctx context.Context, userID uuid.UUID) (total decimal.Decimal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		initials, err := accountRepo.SumInitialBalances(ctx, userID)
		if err != nil {
			return err
		}
		sum, err := txRepo.SumByUser(ctx, userID)
		if err != nil {
			return err
		}
		total = initials.Add(sum)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
