package usecase

import (
	"context"
	"testing"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsistency(f *fixture) *ConsistencyUseCase {
	return NewConsistencyUseCase(f.store, f.orders, f.products, nil)
}

func TestConsistency_CleanDataPasses(t *testing.T) {
	f := newFixture(t)
	orderID := convertedOrder(t, f)
	_, err := NewOrderStatusUseCase(f.store, f.orders, testSettings(), nil).
		Advance(context.Background(), orderID, entities.OrderStatusShipped, admin(), "")
	require.NoError(t, err)

	report, err := newConsistency(f).RunCheck(context.Background(), CheckAll, "")
	require.NoError(t, err)
	assert.True(t, report.IsValid)
	require.Len(t, report.Checks, 4)
	assert.Equal(t, CheckNameOrderTotals, report.Checks[0].CheckName)
	assert.Equal(t, CheckNameOrphanedRecords, report.Checks[3].CheckName)
	assert.Empty(t, report.Issues())
}

func seedCorruption(t *testing.T, f *fixture) {
	t.Helper()
	f.product(t, "prod-a", "A", 10)
	f.store.SeedProduct(entities.Product{ID: "prod-neg", Name: "Oversold", StockQuantity: -2, Version: 7})
	f.store.SeedOrder(entities.Order{
		ID:          "o-total",
		OrderNumber: "ORD-2026-000010",
		QuotationID: "q-gone",
		CustomerID:  "cust-1",
		Status:      entities.InitialOrderStatus,
		TotalAmount: decimal.NewFromInt(100),
		Version:     1,
		Items: []entities.OrderItem{{
			ID: "i-1", OrderID: "o-total", ProductID: "prod-a", Quantity: 1,
			UnitPrice: decimal.NewFromInt(40), LineTotal: decimal.NewFromInt(40),
		}},
	})
	f.store.SeedOrder(entities.Order{
		ID:          "o-shipped",
		OrderNumber: "ORD-2026-000011",
		CustomerID:  "cust-1",
		Status:      entities.OrderStatusShipped,
		TotalAmount: decimal.Zero,
		Version:     4,
	})
	f.store.SeedOrderItem(entities.OrderItem{ID: "i-orphan", OrderID: "o-gone", ProductID: "prod-gone", Quantity: 0})
	f.store.SeedStatusHistory(entities.OrderStatusHistory{ID: "h-orphan", OrderID: "o-gone", ToStatus: entities.InitialOrderStatus})
	f.store.SeedSampleItem(entities.SampleItem{ID: "s-orphan", SampleRequestID: "r-gone", ProductName: "pouch", Quantity: 1})
}

func TestConsistency_FindsEachKindOfCorruption(t *testing.T) {
	f := newFixture(t)
	seedCorruption(t, f)
	uc := newConsistency(f)
	ctx := context.Background()

	totals, err := uc.CheckOrderItemsConsistency(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "o-total", totals[0].EntityID)
	assert.Equal(t, "60", totals[0].Details["difference"])

	negative, err := uc.CheckNegativeStock(ctx)
	require.NoError(t, err)
	require.Len(t, negative, 1)
	assert.Equal(t, "prod-neg", negative[0].EntityID)

	integrity, err := uc.CheckOrderIntegrity(ctx, "")
	require.NoError(t, err)
	// i-orphan: missing order, missing product, zero quantity; o-shipped: no items, no history.
	assert.Len(t, integrity, 5)

	orphans, err := uc.CheckOrphanedRecords(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 3)
	sortIssues(orphans)
	assert.Equal(t, "order", orphans[0].EntityType)
	assert.Equal(t, SeverityWarning, orphans[0].Severity)
	assert.Equal(t, "order_status_history", orphans[1].EntityType)
	assert.Equal(t, "sample_item", orphans[2].EntityType)
}

func TestConsistency_RunCheck(t *testing.T) {
	f := newFixture(t)
	seedCorruption(t, f)
	uc := newConsistency(f)
	ctx := context.Background()

	report, err := uc.RunCheck(ctx, "", "")
	require.NoError(t, err)
	assert.False(t, report.IsValid)
	assert.Len(t, report.Issues(), 10)

	report, err = uc.RunCheck(ctx, CheckNegativeStock, "")
	require.NoError(t, err)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, CheckNameNegativeStock, report.Checks[0].CheckName)
	assert.Equal(t, 1, report.Checks[0].IssueCount)

	report, err = uc.RunCheck(ctx, CheckOrderIntegrity, "o-shipped")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checks[0].IssueCount)

	report, err = uc.RunCheck(ctx, CheckOrderIntegrity, "o-total")
	require.NoError(t, err)
	assert.True(t, report.IsValid)

	_, err = uc.RunCheck(ctx, CheckOrderIntegrity, "o-missing")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)

	_, err = uc.RunCheck(ctx, "everything", "")
	assert.ErrorIs(t, err, domainerr.ErrValidation)
}
