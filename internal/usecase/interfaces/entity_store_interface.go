package interfaces

import (
	"context"

	"order_core/internal/domain/entities"

	"github.com/go-faster/errors"
)

// Store-level failures reported by IUnitOfWork implementations. Use cases
// translate them into the domain taxonomy.
var (
	// ErrVersionMismatch means a version-conditioned write found a different
	// stored version.
	ErrVersionMismatch = errors.New("version mismatch")
	// ErrDuplicateKey means a uniqueness key was already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrConstraintViolation means a structural rule (non-negative stock,
	// positive quantity, row existence) rejected the write.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStoreUnavailable wraps connectivity and throttling failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Uniqueness keys held by the order_keys table.
const (
	KeyPrefixQuotation     = "quotation#"
	KeyPrefixOrderNumber   = "order_number#"
	KeyPrefixRequestNumber = "request_number#"
)

// DuplicateKeyError names the uniqueness key that rejected a commit.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string { return "duplicate key " + e.Key }

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// VersionMismatchError names the row whose version guard failed.
type VersionMismatchError struct {
	Entity          string
	ID              string
	ExpectedVersion int64
}

func (e *VersionMismatchError) Error() string {
	return "version mismatch on " + e.Entity + " " + e.ID
}

func (e *VersionMismatchError) Unwrap() error { return ErrVersionMismatch }

// ITxn stages writes for one atomic unit of work. Nothing is visible to
// other readers until the enclosing Transact call commits.
//
// Every Update* call is version-guarded: it only applies if the stored
// version equals expectedVersion, and it stores expectedVersion+1.
type ITxn interface {
	// CreateOrder stages the order, its items and the uniqueness keys for
	// its quotation and order number.
	CreateOrder(o entities.Order)
	AppendStatusHistory(h entities.OrderStatusHistory)
	UpdateProductStock(productID string, newStock int64, expectedVersion int64)
	UpdateQuotationStatus(quotationID string, status entities.QuotationStatus, expectedVersion int64)
	UpdateOrderStatus(orderID string, status entities.OrderStatus, expectedVersion int64)
	// CreateSampleRequest stages the request, its items and the uniqueness
	// key for its request number.
	CreateSampleRequest(r entities.SampleRequest)
}

// IUnitOfWork runs fn and commits everything it staged as one atomic unit.
// If fn returns an error nothing is written and that error is returned.
type IUnitOfWork interface {
	Transact(ctx context.Context, fn func(tx ITxn) error) error
}
