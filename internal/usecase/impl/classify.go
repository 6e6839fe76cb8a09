// Package impl contains the application-specific business rules
// implementations.
package impl

import (
	domainerrors "electric/internal/domain/errors"
	"electric/internal/domain/repository"
	"electric/internal/errors"
)

// classify maps repository errors onto the application error taxonomy.
// AppErrors pass through untouched; everything else becomes a storage
// execution error.
func classify(err error, details string) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return domainerrors.ErrInvalidID.WrapMessage(details)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return domainerrors.NewStorageExecuteError(err, details)
}
