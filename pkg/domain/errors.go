// Package domain defines the error taxonomy shared by every service.
// Errors are sentinels so callers can classify failures with errors.Is
// without depending on infrastructure error types.
package domain

import "errors"

var (
	// ErrNotFound is returned when a requested resource does not exist,
	// or exists but is not owned by the caller. The two cases are
	// deliberately indistinguishable so ownership cannot be probed.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned when an operation is rejected by a business rule,
	// such as deleting an account that still has active transactions.
	ErrConflict = errors.New("conflict")
)
