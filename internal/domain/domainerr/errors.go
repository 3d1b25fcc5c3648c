// Package domainerr defines the error taxonomy shared by the use cases and
// the transport layer. Every typed error matches its sentinel through
// errors.Is, so callers can branch on the category without a type switch.
package domainerr

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrConflict           = errors.New("version conflict")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrTransient          = errors.New("transient failure")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError reports malformed or out-of-policy input. It is raised
// before any write is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidStateError reports an operation that is not legal in the entity's
// current state.
type InvalidStateError struct {
	Entity  string
	ID      string
	State   string
	Message string
}

func NewInvalidState(entity, id, state, message string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, State: state, Message: message}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %q in state %s: %s", e.Entity, e.ID, e.State, e.Message)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// Shortage is one product that cannot cover the requested quantity.
type Shortage struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Requested   int64  `json:"requested"`
	Available   int64  `json:"available"`
	Shortage    int64  `json:"shortage"`
}

// InsufficientStockError lists every shortfall found in one pass.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s requested=%d available=%d", s.ProductID, s.Requested, s.Available))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ConflictError is an optimistic-concurrency version mismatch. The stored
// row is left untouched.
type ConflictError struct {
	Entity          string
	ID              string
	ExpectedVersion int64
}

func NewConflict(entity, id string, expectedVersion int64) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, ExpectedVersion: expectedVersion}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q changed since version %d", e.Entity, e.ID, e.ExpectedVersion)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// IntegrityViolationError means the store rejected a write on a structural
// constraint that earlier validation should have prevented.
type IntegrityViolationError struct {
	Op  string
	Err error
}

func (e *IntegrityViolationError) Error() string {
	return fmt.Sprintf("integrity violation during %s: %v", e.Op, e.Err)
}

func (e *IntegrityViolationError) Unwrap() []error { return []error{ErrIntegrityViolation, e.Err} }

// TransientError wraps an infrastructure failure. No partial state was
// committed, so the whole operation may be retried.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure during %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() []error { return []error{ErrTransient, e.Err} }

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// Classified reports whether err already belongs to the taxonomy.
func Classified(err error) bool {
	for _, target := range []error{
		ErrValidation, ErrNotFound, ErrInvalidState, ErrInsufficientStock,
		ErrConflict, ErrIntegrityViolation, ErrTransient, ErrForbidden,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
