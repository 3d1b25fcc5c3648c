package repository

import (
	"context"
	"testing"
	"time"

	"order_core/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	validUntil := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	q := entities.Quotation{
		ID: "q-1", CustomerID: "cust-1", Status: entities.QuotationStatusApproved, ValidUntil: &validUntil,
		Items: []entities.QuotationItem{{ProductID: "p-1", ProductName: "Pouch", Quantity: 3, UnitPrice: decimal.RequireFromString("0.35")}},
	}

	t.Run("stored row keeps its time format", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toQuotationItem(q))
		require.NoError(t, err)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "2026-04-01T00:00:00Z"}, av["valid_until"])
	})

	t.Run("get decodes money and validity", func(t *testing.T) {
		fake := newFakeDynamo()
		q.Version = 3
		fake.seed(t, testTables.Quotations, "id", "q-1", toQuotationItem(q))

		got, err := NewQuotationDynamoRepository(fake, testTables).GetByID(ctx, "q-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Version)
		require.NotNil(t, got.ValidUntil)
		assert.True(t, validUntil.Equal(*got.ValidUntil))
		require.Len(t, got.Items, 1)
		assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("0.35")))
		assert.True(t, got.Total().Equal(decimal.RequireFromString("1.05")))
	})

	t.Run("missing row is the zero value", func(t *testing.T) {
		got, err := NewQuotationDynamoRepository(newFakeDynamo(), testTables).GetByID(ctx, "q-404")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestProductDynamoRepository_GetByID(t *testing.T) {
	fake := newFakeDynamo()
	fake.seed(t, testTables.Products, "id", "p-1", toProductItem(entities.Product{ID: "p-1", Name: "Pouch", StockQuantity: 10, Version: 4}))
	repo := NewProductDynamoRepository(fake, testTables)

	p, err := repo.GetByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Pouch", p.Name)
	assert.Equal(t, int64(10), p.StockQuantity)
	assert.Equal(t, int64(4), p.Version)

	missing, err := repo.GetByID(context.Background(), "p-404")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	o := sampleOrder()

	t.Run("by quotation through the key table", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.seed(t, testTables.Keys, "key", "quotation#q-1", keyItem{Key: "quotation#q-1", OwnerID: "o-1"})
		fake.seed(t, testTables.Orders, "id", "o-1", toOrderItem(o))

		got, err := NewOrderDynamoRepository(fake, testTables).GetByQuotationID(ctx, "q-1")
		require.NoError(t, err)
		assert.Equal(t, "ORD-2026-000001", got.OrderNumber)
		assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25.50")))
		assert.Empty(t, fake.queries)
	})

	t.Run("by quotation falls back to the index", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.page(t, testTables.Orders, toOrderItem(o))

		got, err := NewOrderDynamoRepository(fake, testTables).GetByQuotationID(ctx, "q-1")
		require.NoError(t, err)
		assert.Equal(t, "o-1", got.ID)
		require.Len(t, fake.queries, 1)
		assert.Equal(t, quotationIDIndex, aws.ToString(fake.queries[0].IndexName))
	})

	t.Run("unconverted quotation", func(t *testing.T) {
		got, err := NewOrderDynamoRepository(newFakeDynamo(), testTables).GetByQuotationID(ctx, "q-9")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("history at the same instant comes back in transition order", func(t *testing.T) {
		fake := newFakeDynamo()
		at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		fake.page(t, testTables.StatusHistory,
			toStatusHistoryItem(entities.OrderStatusHistory{ID: "z", OrderID: "o-1", Sequence: 1, ToStatus: entities.InitialOrderStatus, CreatedAt: at}),
			toStatusHistoryItem(entities.OrderStatusHistory{ID: "b", OrderID: "o-1", Sequence: 3, FromStatus: entities.OrderStatusDataReceived, ToStatus: entities.OrderStatusWorkOrder, CreatedAt: at}),
		)
		fake.page(t, testTables.StatusHistory,
			toStatusHistoryItem(entities.OrderStatusHistory{ID: "a", OrderID: "o-1", Sequence: 2, FromStatus: entities.InitialOrderStatus, ToStatus: entities.OrderStatusDataReceived, CreatedAt: at}),
		)

		rows, err := NewOrderDynamoRepository(fake, testTables).ListStatusHistory(ctx, "o-1")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"z", "a", "b"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
		assert.Equal(t, int64(3), rows[2].Sequence)
	})

	t.Run("items span pages and come back ordered", func(t *testing.T) {
		fake := newFakeDynamo()
		base := o.Items[0]
		later := base
		later.ID, later.CreatedAt = "i-0", base.CreatedAt.Add(time.Second)
		fake.page(t, testTables.OrderItems, toOrderLineItem(later))
		fake.page(t, testTables.OrderItems, toOrderLineItem(base))

		items, err := NewOrderDynamoRepository(fake, testTables).ListItems(ctx, "o-1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "i-1", items[0].ID)
		assert.Equal(t, "i-0", items[1].ID)
		assert.True(t, entities.SumLineTotals(items).Equal(decimal.RequireFromString("51")))
		for _, q := range fake.queries {
			assert.True(t, aws.ToBool(q.ConsistentRead))
		}
	})
}

func TestSampleRequestDynamoRepository_GetByRequestNumber(t *testing.T) {
	fake := newFakeDynamo()
	req := entities.SampleRequest{
		ID: "sr-1", RequestNumber: "SMP-2026-0001", Status: entities.SampleRequestStatusReceived,
		Customer:     entities.CustomerInfo{ContactPerson: "Kim", Email: "kim@acme.example", Phone: "555"},
		DeliveryType: entities.DeliveryTypeNormal,
		Destinations: []entities.DeliveryDestination{{ContactPerson: "Dock", Phone: "556", Address: "1 Harbor Rd", IsPrimary: true}},
		Message:      "Two printed samples please",
	}
	fake.seed(t, testTables.Keys, "key", "request_number#SMP-2026-0001", keyItem{Key: "request_number#SMP-2026-0001", OwnerID: "sr-1"})
	fake.seed(t, testTables.SampleRequests, "id", "sr-1", toSampleRequestItem(req))
	fake.page(t, testTables.SampleItems, toSampleLineItem(entities.SampleItem{
		ID: "si-1", SampleRequestID: "sr-1", ProductName: "Pouch", Category: "pouch", Quantity: 2,
		Specifications: entities.Specifications{"width_mm": float64(120), "zipper": true},
	}))

	got, err := NewSampleRequestDynamoRepository(fake, testTables).GetByRequestNumber(context.Background(), "SMP-2026-0001")
	require.NoError(t, err)
	assert.Equal(t, "sr-1", got.ID)
	assert.Equal(t, "kim@acme.example", got.Customer.Email)
	require.Len(t, got.Destinations, 1)
	assert.True(t, got.Destinations[0].IsPrimary)
	require.Len(t, got.Items, 1)
	assert.Equal(t, float64(120), got.Items[0].Specifications["width_mm"])
	assert.Equal(t, true, got.Items[0].Specifications["zipper"])
}

func TestSequenceDynamoRepository_Next(t *testing.T) {
	fake := newFakeDynamo()
	out, err := attributevalue.MarshalMap(counterItem{Name: "order#2026", Value: 42})
	require.NoError(t, err)
	fake.updateOut = out

	n, err := NewSequenceDynamoRepository(fake, testTables).Next(context.Background(), "order", 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	require.Len(t, fake.updates, 1)
	assert.Equal(t, "ADD #value :one", aws.ToString(fake.updates[0].UpdateExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "order#2026"}, fake.updates[0].Key["name"])
}

func TestConsistencyDynamoReader(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.page(t, testTables.Products, toProductItem(entities.Product{ID: "p-2", StockQuantity: -3}))
	fake.page(t, testTables.Products, toProductItem(entities.Product{ID: "p-1", StockQuantity: 5}))
	fake.page(t, testTables.Quotations, toQuotationItem(entities.Quotation{ID: "q-2"}), toQuotationItem(entities.Quotation{ID: "q-1"}))

	reader := NewConsistencyDynamoReader(fake, testTables)

	products, err := reader.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p-1", products[0].ID)
	assert.Equal(t, int64(-3), products[1].StockQuantity)

	ids, err := reader.ListQuotationIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"q-1", "q-2"}, ids)

	orders, err := reader.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestTablesDefinitions(t *testing.T) {
	defs := NewTables("dev_").Definitions()
	require.Len(t, defs, 9)

	byName := map[string]int{}
	for i, d := range defs {
		byName[aws.ToString(d.TableName)] = i
		assert.Equal(t, types.BillingModePayPerRequest, d.BillingMode)
	}
	orders := defs[byName["dev_orders"]]
	require.Len(t, orders.GlobalSecondaryIndexes, 1)
	assert.Equal(t, quotationIDIndex, aws.ToString(orders.GlobalSecondaryIndexes[0].IndexName))

	items := defs[byName["dev_order_items"]]
	require.Len(t, items.KeySchema, 2)
	assert.Equal(t, "order_id", aws.ToString(items.KeySchema[0].AttributeName))
	assert.Equal(t, types.KeyTypeRange, items.KeySchema[1].KeyType)
}
