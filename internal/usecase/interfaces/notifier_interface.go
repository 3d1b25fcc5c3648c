package interfaces

import (
	"context"

	"order_core/internal/domain/entities"
)

// INotifier dispatches best-effort events after a commit. Callers log
// failures and never roll back because of them.
type INotifier interface {
	NotifySampleRequest(ctx context.Context, r entities.SampleRequest) error
	NotifyOrderConverted(ctx context.Context, o entities.Order) error
}
