package usecase

import (
	"context"
	"time"

	"order_core/internal/domain/domainerr"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
)

// RetryPolicy bounds how often a conflicting write is retried.
type RetryPolicy struct {
	MaxAttempts        int
	InitialBackoff     time.Duration
	BackoffCoefficient float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialBackoff: 25 * time.Millisecond, BackoffCoefficient: 2.0}
}

// Backoff returns the wait before the given (1-based) retry attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	d := p.InitialBackoff
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * p.BackoffCoefficient)
	}
	return d
}

// VersionMutation stages writes conditioned on expectedVersion.
type VersionMutation func(tx interfaces.ITxn, expectedVersion int64) error

// VersionGuard applies optimistic-concurrency writes. Exactly one writer wins
// per version value; losers get a ConflictError and leave no trace.
type VersionGuard struct {
	uow    interfaces.IUnitOfWork
	policy RetryPolicy
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewVersionGuard(uow interfaces.IUnitOfWork, policy RetryPolicy) *VersionGuard {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy()
	}
	return &VersionGuard{uow: uow, policy: policy, sleep: sleepContext}
}

// CompareAndSwap commits mutation as one unit. On success the stored version
// is expectedVersion+1, which is returned.
func (g *VersionGuard) CompareAndSwap(ctx context.Context, entity, id string, expectedVersion int64, mutation VersionMutation) (int64, error) {
	err := g.uow.Transact(ctx, func(tx interfaces.ITxn) error {
		return mutation(tx, expectedVersion)
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionMismatch) {
			return 0, domainerr.NewConflict(entity, id, expectedVersion)
		}
		return 0, classifyStoreError("compare-and-swap "+entity, err)
	}
	return expectedVersion + 1, nil
}

// Retry runs op until it returns something other than a ConflictError or the
// attempts run out. The last ConflictError is returned when exhausted.
func (g *VersionGuard) Retry(ctx context.Context, op func(ctx context.Context, attempt int) error) error {
	var err error
	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		err = op(ctx, attempt)
		if err == nil || !errors.Is(err, domainerr.ErrConflict) {
			return err
		}
		if attempt == g.policy.MaxAttempts {
			break
		}
		if sErr := g.sleep(ctx, g.policy.Backoff(attempt)); sErr != nil {
			return &domainerr.TransientError{Op: "retry backoff", Err: sErr}
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
