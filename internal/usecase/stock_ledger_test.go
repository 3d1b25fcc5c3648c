package usecase

import (
	"context"
	"errors"
	"testing"

	"order_core/internal/domain/domainerr"
	"order_core/internal/domain/entities"
	mock_interfaces "order_core/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStockLedger_ReserveAndDecrement(t *testing.T) {
	product := entities.Product{ID: "p-1", Name: "Kraft pouch", StockQuantity: 10, Version: 3}

	cases := []struct {
		name            string
		quantity        int64
		expectedVersion int64
		lookupErr       error
		missing         bool
		expectStage     bool
		sentinel        error
	}{
		{name: "reserves and stages decrement", quantity: 4, expectedVersion: CurrentVersion, expectStage: true},
		{name: "exact stock", quantity: 10, expectedVersion: 3, expectStage: true},
		{name: "short stock", quantity: 11, expectedVersion: CurrentVersion, sentinel: domainerr.ErrInsufficientStock},
		{name: "stale version", quantity: 1, expectedVersion: 2, sentinel: domainerr.ErrConflict},
		{name: "zero quantity", quantity: 0, expectedVersion: CurrentVersion, sentinel: domainerr.ErrValidation},
		{name: "unknown product", quantity: 1, expectedVersion: CurrentVersion, missing: true, sentinel: domainerr.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			products := mock_interfaces.NewMockIProductRepository(ctrl)
			tx := mock_interfaces.NewMockITxn(ctrl)

			if tc.quantity > 0 {
				found := product
				if tc.missing {
					found = entities.Product{}
				}
				products.EXPECT().GetByID(gomock.Any(), "p-1").Return(found, nil)
			}
			if tc.expectStage {
				tx.EXPECT().UpdateProductStock("p-1", product.StockQuantity-tc.quantity, product.Version)
			}

			res, err := NewStockLedger(products).ReserveAndDecrement(context.Background(), tx, "p-1", tc.quantity, tc.expectedVersion)
			if tc.sentinel != nil {
				if !errors.Is(err, tc.sentinel) {
					t.Fatalf("expected %v, got %v", tc.sentinel, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, product.StockQuantity, res.Before)
			assert.Equal(t, product.StockQuantity-tc.quantity, res.After)
			assert.Equal(t, int64(4), res.NewVersion)
		})
	}
}

func TestStockLedger_ShortStockCarriesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Kraft pouch", StockQuantity: 3, Version: 1}, nil)

	_, err := NewStockLedger(products).ReserveAndDecrement(context.Background(), mock_interfaces.NewMockITxn(ctrl), "p-1", 5, CurrentVersion)

	var stockErr *domainerr.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, []domainerr.Shortage{{ProductID: "p-1", ProductName: "Kraft pouch", Requested: 5, Available: 3, Shortage: 2}}, stockErr.Shortages)
}

func TestStockLedger_Shortfall(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p-1", "Kraft pouch", 3)
	ledger := NewStockLedger(f.products)

	s, err := ledger.Shortfall(context.Background(), "p-1", 3)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ledger.Shortfall(context.Background(), "p-1", 8)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(5), s.Shortage)

	_, err = ledger.Shortfall(context.Background(), "p-404", 1)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)

	assert.Equal(t, int64(3), f.stock(t, "p-1").StockQuantity)
}
