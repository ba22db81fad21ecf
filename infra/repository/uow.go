package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/fintrack/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do are bound to the transaction session, so
// multi-repository writes stay atomic.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():     func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
			reflect.TypeOf((*repository.CategoryRepository)(nil)).Elem():    func(db *gorm.DB) any { return NewCategoryRepository(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UnitOfWork bound to it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository provides generic access to repositories using the current
// session. Outside Do it falls back to the root session, which is safe for
// single-statement reads.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repo, err := u.GetRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repo.(repository.AccountRepository), nil
}

// TransactionRepository returns the transaction repository bound to the current session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	repo, err := u.GetRepository(reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repo.(repository.TransactionRepository), nil
}

// CategoryRepository returns the category repository bound to the current session.
func (u *UoW) CategoryRepository() (repository.CategoryRepository, error) {
	repo, err := u.GetRepository(reflect.TypeOf((*repository.CategoryRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repo.(repository.CategoryRepository), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
