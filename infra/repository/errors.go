package repository

import (
	"errors"

	"github.com/fintrack/ledger/pkg/domain"
	"gorm.io/gorm"
)

// mapGormError converts gorm errors to domain errors so infrastructure
// concerns stay inside this layer. The error chain is traversed because gorm
// wraps driver errors.
func mapGormError(err error) error {
	if err == nil {
		return nil
	}

	current := err
	for current != nil {
		switch {
		case errors.Is(current, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(current, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
		current = errors.Unwrap(current)
	}

	return err
}
