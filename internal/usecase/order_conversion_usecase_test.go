package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"
	mock_interfaces "order_core/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func TestOrderConversion_InsufficientStockListsEveryShortfall(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "Stand pouch A", 50)
	f.product(t, "prod-b", "Flat pouch B", 3)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved,
		line("prod-a", "Stand pouch A", 10, "12.50"),
		line("prod-b", "Flat pouch B", 5, "8.00"),
	)
	uc := f.conversion(nil, testSettings())

	_, err := uc.ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))

	var stockErr *domainerr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Shortages, 1)
	assert.Equal(t, domainerr.Shortage{
		ProductID: "prod-b", ProductName: "Flat pouch B", Requested: 5, Available: 3, Shortage: 2,
	}, stockErr.Shortages[0])

	assert.Equal(t, int64(50), f.stock(t, "prod-a").StockQuantity)
	assert.Equal(t, int64(1), f.stock(t, "prod-a").Version)
	assert.Equal(t, int64(3), f.stock(t, "prod-b").StockQuantity)

	orders, _ := f.store.ListOrders(context.Background())
	assert.Empty(t, orders)
	items, _ := f.store.ListOrderItems(context.Background())
	assert.Empty(t, items)
	history, _ := f.store.ListStatusHistory(context.Background())
	assert.Empty(t, history)
	q, _ := f.quotations.GetByID(context.Background(), "q-1")
	assert.Equal(t, entities.QuotationStatusApproved, q.Status)
}

func TestOrderConversion_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	f := newFixture(t)
	f.product(t, "prod-a", "Stand pouch A", 50)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-a", "Stand pouch A", 10, "12.50"))

	notifier.EXPECT().NotifyOrderConverted(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) error {
			if o.QuotationID != "q-1" || len(o.Items) != 1 {
				t.Fatalf("unexpected event payload: %+v", o)
			}
			return nil
		},
	)

	uc := f.conversion(notifier, testSettings())
	res, err := uc.ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
	require.NoError(t, err)
	assert.False(t, res.AlreadyConverted)
	assert.True(t, res.StockUpdated)
	assert.Equal(t, "ORD-2026-000001", res.OrderNumber)

	p := f.stock(t, "prod-a")
	assert.Equal(t, int64(40), p.StockQuantity)
	assert.Equal(t, int64(2), p.Version)

	q, _ := f.quotations.GetByID(context.Background(), "q-1")
	assert.Equal(t, entities.QuotationStatusConverted, q.Status)
	assert.Equal(t, int64(2), q.Version)

	o, _ := f.orders.GetByID(context.Background(), res.OrderID)
	assert.Equal(t, entities.InitialOrderStatus, o.Status)
	assert.Equal(t, int64(1), o.Version)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("125")))

	items, _ := f.orders.ListItems(context.Background(), res.OrderID)
	require.Len(t, items, 1)
	assert.True(t, items[0].LineTotal.Equal(o.TotalAmount))

	history, _ := f.orders.ListStatusHistory(context.Background(), res.OrderID)
	require.Len(t, history, 1)
	assert.Equal(t, "cust-1", history[0].Actor)
	assert.Equal(t, entities.OrderStatus(""), history[0].FromStatus)
	assert.Equal(t, entities.InitialOrderStatus, history[0].ToStatus)
}

func TestOrderConversion_SecondCallIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "Stand pouch A", 50)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-a", "Stand pouch A", 10, "1"))
	uc := f.conversion(nil, testSettings())

	first, err := uc.ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
	require.NoError(t, err)
	second, err := uc.ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
	require.NoError(t, err)

	assert.True(t, second.AlreadyConverted)
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.Equal(t, first.OrderNumber, second.OrderNumber)
	assert.Equal(t, int64(40), f.stock(t, "prod-a").StockQuantity)
}

func TestOrderConversion_Preconditions(t *testing.T) {
	expired := fixedNow.Add(-time.Hour)

	cases := []struct {
		name     string
		setup    func(t *testing.T, f *fixture)
		id       string
		caller   entities.Caller
		sentinel error
	}{
		{
			name:     "missing id",
			setup:    func(*testing.T, *fixture) {},
			id:       "  ",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrValidation,
		},
		{
			name:     "not found",
			setup:    func(*testing.T, *fixture) {},
			id:       "q-missing",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrNotFound,
		},
		{
			name: "not approved",
			setup: func(t *testing.T, f *fixture) {
				f.quotation(t, "q-1", "cust-1", entities.QuotationStatusSent, line("prod-a", "A", 1, "1"))
			},
			id:       "q-1",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrInvalidState,
		},
		{
			name: "another customer",
			setup: func(t *testing.T, f *fixture) {
				f.quotation(t, "q-1", "cust-2", entities.QuotationStatusApproved, line("prod-a", "A", 1, "1"))
			},
			id:       "q-1",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrForbidden,
		},
		{
			name: "expired",
			setup: func(t *testing.T, f *fixture) {
				f.store.SeedQuotation(entities.Quotation{
					ID: "q-1", CustomerID: "cust-1", Status: entities.QuotationStatusApproved, Version: 1,
					Items: []entities.QuotationItem{line("prod-a", "A", 1, "1")}, ValidUntil: &expired,
				})
			},
			id:       "q-1",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrInvalidState,
		},
		{
			name: "unknown product",
			setup: func(t *testing.T, f *fixture) {
				f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-x", "X", 1, "1"))
			},
			id:       "q-1",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrNotFound,
		},
		{
			name: "non-positive quantity",
			setup: func(t *testing.T, f *fixture) {
				f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 0, "1"))
			},
			id:       "q-1",
			caller:   member("cust-1"),
			sentinel: domainerr.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.product(t, "prod-a", "A", 10)
			tc.setup(t, f)
			uc := f.conversion(nil, testSettings())

			_, err := uc.ConvertQuotationToOrder(context.Background(), tc.id, tc.caller)
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected %v, got %v", tc.sentinel, err)
			}
			assert.Equal(t, int64(10), f.stock(t, "prod-a").StockQuantity)
		})
	}
}

func TestOrderConversion_AdminMayConvertAnyQuotation(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "A", 10)
	f.quotation(t, "q-1", "cust-2", entities.QuotationStatusApproved, line("prod-a", "A", 2, "3"))

	res, err := f.conversion(nil, testSettings()).ConvertQuotationToOrder(context.Background(), "q-1", admin())
	require.NoError(t, err)

	history, _ := f.orders.ListStatusHistory(context.Background(), res.OrderID)
	require.Len(t, history, 1)
	assert.Equal(t, "admin-1", history[0].Actor)
}

func TestOrderConversion_AggregatesLinesForSameProduct(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "A", 10)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved,
		line("prod-a", "A printed", 6, "2"),
		line("prod-a", "A plain", 6, "1"),
	)
	uc := f.conversion(nil, testSettings())

	_, err := uc.ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
	var stockErr *domainerr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(12), stockErr.Shortages[0].Requested)
	assert.Equal(t, int64(2), stockErr.Shortages[0].Shortage)

	f.product(t, "prod-b", "B", 10)
	f.quotation(t, "q-2", "cust-1", entities.QuotationStatusApproved,
		line("prod-b", "B printed", 4, "2"),
		line("prod-b", "B plain", 5, "1"),
	)
	res, err := uc.ConvertQuotationToOrder(context.Background(), "q-2", member("cust-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.stock(t, "prod-b").StockQuantity)
	assert.Equal(t, int64(2), f.stock(t, "prod-b").Version)

	items, _ := f.orders.ListItems(context.Background(), res.OrderID)
	assert.Len(t, items, 2)
	o, _ := f.orders.GetByID(context.Background(), res.OrderID)
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(13)))
}

func TestOrderConversion_ConcurrentCallsCreateOneOrder(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "A", 100)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 10, "5"))
	uc := f.conversion(nil, testSettings())

	const callers = 8
	results := make([]ConversionResult, callers)
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			res, err := uc.ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
			results[i] = res
			return err
		})
	}
	require.NoError(t, g.Wait())

	fresh := 0
	for _, r := range results {
		assert.Equal(t, results[0].OrderID, r.OrderID)
		if !r.AlreadyConverted {
			fresh++
		}
	}
	assert.Equal(t, 1, fresh)

	orders, _ := f.store.ListOrders(context.Background())
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(90), f.stock(t, "prod-a").StockQuantity)
	assert.Equal(t, int64(2), f.stock(t, "prod-a").Version)
}

func TestOrderConversion_ConcurrentQuotationsNeverOversell(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "A", 30)
	const quotations = 5
	for i := 0; i < quotations; i++ {
		f.quotation(t, "q-"+string(rune('a'+i)), "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 10, "1"))
	}
	settings := testSettings()
	settings.Retry.MaxAttempts = quotations
	uc := f.conversion(nil, settings)

	var converted, short atomic.Int32
	var g errgroup.Group
	for i := 0; i < quotations; i++ {
		g.Go(func() error {
			_, err := uc.ConvertQuotationToOrder(context.Background(), "q-"+string(rune('a'+i)), member("cust-1"))
			switch {
			case err == nil:
				converted.Add(1)
			case errors.Is(err, domainerr.ErrInsufficientStock):
				short.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(3), converted.Load())
	assert.Equal(t, int32(2), short.Load())
	p := f.stock(t, "prod-a")
	assert.Equal(t, int64(0), p.StockQuantity)
	assert.Equal(t, int64(4), p.Version)
}

func TestOrderConversion_StoreFailureIsTransient(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "A", 10)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 1, "1"))
	f.store.SetCommitHook(func(int) error { return errors.New("connection reset by peer") })

	_, err := f.conversion(nil, testSettings()).ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
	assert.ErrorIs(t, err, domainerr.ErrTransient)
	assert.Equal(t, int64(10), f.stock(t, "prod-a").StockQuantity)
}

func TestOrderConversion_NotifierFailureDoesNotFailConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	notifier.EXPECT().NotifyOrderConverted(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	f := newFixture(t)
	f.product(t, "prod-a", "A", 10)
	f.quotation(t, "q-1", "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 1, "1"))

	res, err := f.conversion(notifier, testSettings()).ConvertQuotationToOrder(context.Background(), "q-1", member("cust-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.OrderID)
}

func TestOrderConversion_CheckEligibility(t *testing.T) {
	f := newFixture(t)
	f.product(t, "prod-a", "A", 5)
	f.quotation(t, "q-ok", "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 5, "1"))
	f.quotation(t, "q-short", "cust-1", entities.QuotationStatusApproved, line("prod-a", "A", 7, "1"))
	f.quotation(t, "q-draft", "cust-1", entities.QuotationStatusDraft, line("prod-a", "A", 1, "1"))
	uc := f.conversion(nil, testSettings())
	ctx := context.Background()

	e, err := uc.CheckEligibility(ctx, "q-ok", member("cust-1"))
	require.NoError(t, err)
	assert.True(t, e.Eligible)

	e, err = uc.CheckEligibility(ctx, "q-short", member("cust-1"))
	require.NoError(t, err)
	assert.False(t, e.Eligible)
	require.Len(t, e.Shortages, 1)
	assert.Equal(t, int64(2), e.Shortages[0].Shortage)

	e, err = uc.CheckEligibility(ctx, "q-draft", member("cust-1"))
	require.NoError(t, err)
	assert.False(t, e.Eligible)
	assert.Equal(t, "quotation not approved", e.Reason)

	res, err := uc.ConvertQuotationToOrder(ctx, "q-ok", member("cust-1"))
	require.NoError(t, err)
	e, err = uc.CheckEligibility(ctx, "q-ok", member("cust-1"))
	require.NoError(t, err)
	assert.False(t, e.Eligible)
	assert.Equal(t, res.OrderID, e.ExistingOrderID)

	assert.Equal(t, int64(0), f.stock(t, "prod-a").StockQuantity)
}
