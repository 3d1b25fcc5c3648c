package interfaces

import (
	"context"

	"order_core/internal/domain/entities"
)

// Getters return the zero value (empty ID) and a nil error when the row
// does not exist. All reads are strongly consistent. Quotations and products
// are written by the quoting workflow and the catalog, never by this module
// except through ITxn.

type IQuotationRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
}

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}

// IOrderRepository reads orders. Orders are written only through ITxn.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Order, error)
	ListItems(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	ListStatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error)
}

type ISampleRequestRepository interface {
	GetByRequestNumber(ctx context.Context, requestNumber string) (entities.SampleRequest, error)
}

// ISequenceGenerator hands out monotonically increasing numbers per
// (name, year). Numbers are never reused; gaps are allowed.
type ISequenceGenerator interface {
	Next(ctx context.Context, name string, year int) (int64, error)
}

// IConsistencyReader scans committed data for the consistency checks.
type IConsistencyReader interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListQuotationIDs(ctx context.Context) ([]string, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListOrderItems(ctx context.Context) ([]entities.OrderItem, error)
	ListStatusHistory(ctx context.Context) ([]entities.OrderStatusHistory, error)
	ListSampleRequestIDs(ctx context.Context) ([]string, error)
	ListSampleItems(ctx context.Context) ([]entities.SampleItem, error)
}
