package usecase

import (
	"context"
	"strings"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderDetails is an order with its items and transition log.
type OrderDetails struct {
	Order   entities.Order
	History []entities.OrderStatusHistory
}

// IOrderStatusUseCase reads orders and moves them through the workflow.
type IOrderStatusUseCase interface {
	GetOrder(ctx context.Context, orderID string, caller entities.Caller) (OrderDetails, error)
	Advance(ctx context.Context, orderID string, to entities.OrderStatus, caller entities.Caller, note string) (entities.Order, error)
}

type OrderStatusUseCase struct {
	orders   interfaces.IOrderRepository
	guard    *VersionGuard
	settings Settings
	log      *logrus.Entry
}

var _ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)

func NewOrderStatusUseCase(uow interfaces.IUnitOfWork, orders interfaces.IOrderRepository, settings Settings, log *logrus.Entry) *OrderStatusUseCase {
	settings = settings.withDefaults()
	return &OrderStatusUseCase{
		orders:   orders,
		guard:    NewVersionGuard(uow, settings.Retry),
		settings: settings,
		log:      loggerOrDiscard(log).WithFields(logrus.Fields{"component": "status", "layer": "usecase"}),
	}
}

func (u *OrderStatusUseCase) GetOrder(ctx context.Context, orderID string, caller entities.Caller) (OrderDetails, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderDetails{}, domainerr.NewValidation("orderId", "is required")
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderDetails{}, classifyStoreError("load order", err)
	}
	if o.ID == "" {
		return OrderDetails{}, domainerr.NewNotFound("order", orderID)
	}
	if !caller.IsAdmin() && o.CustomerID != caller.ID {
		return OrderDetails{}, &domainerr.ForbiddenError{Message: "order belongs to another customer"}
	}

	if o.Items, err = u.orders.ListItems(ctx, orderID); err != nil {
		return OrderDetails{}, classifyStoreError("load order items", err)
	}
	history, err := u.orders.ListStatusHistory(ctx, orderID)
	if err != nil {
		return OrderDetails{}, classifyStoreError("load order history", err)
	}
	return OrderDetails{Order: o, History: history}, nil
}

// Advance moves the order to status `to`. The status update and its history
// row commit together under the order's version guard, retried on conflict.
func (u *OrderStatusUseCase) Advance(ctx context.Context, orderID string, to entities.OrderStatus, caller entities.Caller, note string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, domainerr.NewValidation("orderId", "is required")
	}
	if !to.Valid() {
		return entities.Order{}, domainerr.NewValidation("status", "unknown order status "+string(to))
	}
	if !caller.Authenticated() {
		return entities.Order{}, domainerr.NewValidation("callerId", "is required")
	}

	log := u.log.WithFields(logrus.Fields{"order_id": orderID, "to_status": to, "caller_id": caller.ID})

	var updated entities.Order
	err := u.guard.Retry(ctx, func(ctx context.Context, attempt int) error {
		o, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return classifyStoreError("load order", err)
		}
		if o.ID == "" {
			return domainerr.NewNotFound("order", orderID)
		}
		if !o.Status.CanTransitionTo(to) {
			return domainerr.NewInvalidState("order", o.ID, string(o.Status), "transition to "+string(to)+" not allowed")
		}

		now := u.settings.Now()
		history := entities.OrderStatusHistory{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			FromStatus: o.Status,
			ToStatus:   to,
			Actor:      caller.ID,
			Note:       note,
			CreatedAt:  now,
		}
		newVersion, err := u.guard.CompareAndSwap(ctx, "order", o.ID, o.Version, func(tx interfaces.ITxn, expected int64) error {
			tx.UpdateOrderStatus(o.ID, to, expected)
			h := history
			h.Sequence = expected + 1
			tx.AppendStatusHistory(h)
			return nil
		})
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Debug("status swap failed")
			return err
		}

		o.Status = to
		o.Version = newVersion
		o.UpdatedAt = now
		updated = o
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("status change failed")
		return entities.Order{}, err
	}
	log.WithField("version", updated.Version).Info("status changed")
	return updated, nil
}
