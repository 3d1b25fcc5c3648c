package usecase

import (
	"context"

	"order_core/internal/domain/domainerr"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
)

// CurrentVersion asks ReserveAndDecrement to guard on whatever version it
// reads. Stored versions start at 1.
const CurrentVersion int64 = 0

// Reservation describes a staged stock decrement.
type Reservation struct {
	ProductID   string
	ProductName string
	Requested   int64
	Before      int64
	After       int64
	NewVersion  int64
}

// StockLedger answers availability questions and stages versioned decrements.
type StockLedger struct {
	products interfaces.IProductRepository
}

func NewStockLedger(products interfaces.IProductRepository) *StockLedger {
	return &StockLedger{products: products}
}

// ReserveAndDecrement checks that quantity is available and stages the
// decrement on tx, guarded by the product version. Nothing is staged when
// stock is short.
func (l *StockLedger) ReserveAndDecrement(ctx context.Context, tx interfaces.ITxn, productID string, quantity int64, expectedVersion int64) (Reservation, error) {
	if quantity <= 0 {
		return Reservation{}, domainerr.NewValidation("quantity", "must be positive")
	}
	p, err := l.products.GetByID(ctx, productID)
	if err != nil {
		return Reservation{}, errors.Wrapf(err, "load product %s", productID)
	}
	if p.ID == "" {
		return Reservation{}, domainerr.NewNotFound("product", productID)
	}
	if expectedVersion != CurrentVersion && p.Version != expectedVersion {
		return Reservation{}, domainerr.NewConflict("product", productID, expectedVersion)
	}
	if p.StockQuantity < quantity {
		return Reservation{}, &domainerr.InsufficientStockError{Shortages: []domainerr.Shortage{{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   quantity,
			Available:   p.StockQuantity,
			Shortage:    quantity - p.StockQuantity,
		}}}
	}

	tx.UpdateProductStock(p.ID, p.StockQuantity-quantity, p.Version)
	return Reservation{
		ProductID:   p.ID,
		ProductName: p.Name,
		Requested:   quantity,
		Before:      p.StockQuantity,
		After:       p.StockQuantity - quantity,
		NewVersion:  p.Version + 1,
	}, nil
}

// Shortfall reports the shortage for quantity of productID without staging
// anything. A nil shortage means the stock covers the request.
func (l *StockLedger) Shortfall(ctx context.Context, productID string, quantity int64) (*domainerr.Shortage, error) {
	p, err := l.products.GetByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "load product %s", productID)
	}
	if p.ID == "" {
		return nil, domainerr.NewNotFound("product", productID)
	}
	if p.StockQuantity >= quantity {
		return nil, nil
	}
	return &domainerr.Shortage{
		ProductID:   p.ID,
		ProductName: p.Name,
		Requested:   quantity,
		Available:   p.StockQuantity,
		Shortage:    quantity - p.StockQuantity,
	}, nil
}
