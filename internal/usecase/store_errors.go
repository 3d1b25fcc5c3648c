package usecase

import (
	"order_core/internal/domain/domainerr"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
)

// classifyStoreError maps a unit-of-work failure onto the domain taxonomy.
// Errors already in the taxonomy pass through untouched; anything the store
// cannot explain, cancellation included, is transient.
func classifyStoreError(op string, err error) error {
	if err == nil || domainerr.Classified(err) {
		return err
	}

	var vm *interfaces.VersionMismatchError
	switch {
	case errors.As(err, &vm):
		return domainerr.NewConflict(vm.Entity, vm.ID, vm.ExpectedVersion)
	case errors.Is(err, interfaces.ErrVersionMismatch):
		return domainerr.NewConflict("", "", 0)
	case errors.Is(err, interfaces.ErrDuplicateKey), errors.Is(err, interfaces.ErrConstraintViolation):
		return &domainerr.IntegrityViolationError{Op: op, Err: err}
	default:
		return &domainerr.TransientError{Op: op, Err: err}
	}
}
