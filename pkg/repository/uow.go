package repository

import (
	"context"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access.
//
// GetRepository is part of UnitOfWork so that every repository obtained inside
// Do is bound to the same store session, keeping multi-repository writes
// atomic. Services never hold repositories across transaction boundaries.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The provided UnitOfWork
	// hands out repositories bound to that transaction. If fn returns an
	// error the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	// Example:
	//   repoAny, err := uow.GetRepository(reflect.TypeOf((*AccountRepository)(nil)).Elem())
	//   repo := repoAny.(AccountRepository)
	GetRepository(repoType reflect.Type) (any, error)

	// Convenience accessors for the known repositories.
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	CategoryRepository() (CategoryRepository, error)
}
