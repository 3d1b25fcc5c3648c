package usecase

import (
	"context"
	"testing"
	"time"

	"order_core/internal/adapter/persistence/memory"
	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store      *memory.Store
	quotations *memory.QuotationRepository
	products   *memory.ProductRepository
	orders     *memory.OrderRepository
	samples    *memory.SampleRequestRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	return &fixture{
		store:      s,
		quotations: memory.NewQuotationRepository(s),
		products:   memory.NewProductRepository(s),
		orders:     memory.NewOrderRepository(s),
		samples:    memory.NewSampleRequestRepository(s),
	}
}

func testSettings() Settings {
	s := DefaultSettings()
	s.Now = func() time.Time { return fixedNow }
	s.Retry = RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Millisecond, BackoffCoefficient: 2}
	return s
}

func (f *fixture) product(t *testing.T, id, name string, stock int64) {
	t.Helper()
	f.store.SeedProduct(entities.Product{ID: id, Name: name, StockQuantity: stock, Version: 1})
}

func (f *fixture) quotation(t *testing.T, id, customerID string, status entities.QuotationStatus, lines ...entities.QuotationItem) {
	t.Helper()
	f.store.SeedQuotation(entities.Quotation{
		ID: id, CustomerID: customerID, Status: status, Items: lines, Version: 1, CreatedAt: fixedNow, UpdatedAt: fixedNow,
	})
}

func (f *fixture) stock(t *testing.T, productID string) entities.Product {
	t.Helper()
	p, err := f.products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	return p
}

func (f *fixture) conversion(notifier interfaces.INotifier, settings Settings) *OrderConversionUseCase {
	return NewOrderConversionUseCase(f.store, f.quotations, f.orders, f.products, f.store, notifier, settings, nil)
}

func line(productID, name string, qty int64, price string) entities.QuotationItem {
	return entities.QuotationItem{ProductID: productID, ProductName: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func member(id string) entities.Caller { return entities.Caller{ID: id, Role: entities.RoleMember} }

func admin() entities.Caller { return entities.Caller{ID: "admin-1", Role: entities.RoleAdmin} }
