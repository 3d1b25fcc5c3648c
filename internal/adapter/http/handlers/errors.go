package handlers

import (
	"net/http"

	"order_core/internal/domain/domainerr"
	"order_core/internal/infrastructure/metrics"
	"order_core/pkg"

	"github.com/go-faster/errors"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapDomainError turns the domain taxonomy into a client-safe AppError.
// Integrity and transient failures never expose the underlying cause.
func mapDomainError(err error) *pkg.AppError {
	var (
		validation *domainerr.ValidationError
		notFound   *domainerr.NotFoundError
		state      *domainerr.InvalidStateError
		forbidden  *domainerr.ForbiddenError
	)
	switch {
	case errors.As(err, &validation):
		appErr := pkg.NewDomainError("VALIDATION_ERROR", validation.Error(), err, http.StatusBadRequest)
		if validation.Field != "" {
			appErr = appErr.WithDetails(map[string]string{"field": validation.Field})
		}
		return appErr
	case errors.As(err, &forbidden):
		return pkg.NewDomainError("FORBIDDEN", forbidden.Message, err, http.StatusForbidden)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Error(), err, http.StatusNotFound)
	case errors.As(err, &state):
		return pkg.NewDomainError("INVALID_STATE", state.Message, err, http.StatusConflict)
	case errors.Is(err, domainerr.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock", err, http.StatusConflict)
	case errors.Is(err, domainerr.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The resource was modified concurrently, please retry", err, http.StatusConflict)
	case errors.Is(err, domainerr.ErrTransient):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// outcome classifies err for the operations counter.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.Is(err, domainerr.ErrTransient), errors.Is(err, domainerr.ErrIntegrityViolation), !domainerr.Classified(err):
		return metrics.StatusError
	default:
		return metrics.StatusRejected
	}
}
