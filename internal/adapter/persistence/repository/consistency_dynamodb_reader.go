package repository

import (
	"context"
	"sort"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"
)

// ConsistencyDynamoReader scans whole tables for the consistency checks.
// Scans are paginated and strongly consistent per page, not across pages.
type ConsistencyDynamoReader struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IConsistencyReader = (*ConsistencyDynamoReader)(nil)

func NewConsistencyDynamoReader(ddb DynamoAPI, tables Tables) *ConsistencyDynamoReader {
	return &ConsistencyDynamoReader{ddb: ddb, tables: tables}
}

func (r *ConsistencyDynamoReader) ListProducts(ctx context.Context) ([]entities.Product, error) {
	rows, err := scanAll[productItem](ctx, r.ddb, r.tables.Products)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromProductItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ConsistencyDynamoReader) ListQuotationIDs(ctx context.Context) ([]string, error) {
	return r.scanIDs(ctx, r.tables.Quotations)
}

func (r *ConsistencyDynamoReader) ListOrders(ctx context.Context) ([]entities.Order, error) {
	rows, err := scanAll[orderItem](ctx, r.ddb, r.tables.Orders)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromOrderItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ConsistencyDynamoReader) ListOrderItems(ctx context.Context) ([]entities.OrderItem, error) {
	rows, err := scanAll[orderLineItem](ctx, r.ddb, r.tables.OrderItems)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderItem, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromOrderLineItem(it))
	}
	sortOrderItems(out)
	return out, nil
}

func (r *ConsistencyDynamoReader) ListStatusHistory(ctx context.Context) ([]entities.OrderStatusHistory, error) {
	rows, err := scanAll[statusHistoryItem](ctx, r.ddb, r.tables.StatusHistory)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderStatusHistory, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromStatusHistoryItem(it))
	}
	sortHistory(out)
	return out, nil
}

func (r *ConsistencyDynamoReader) ListSampleRequestIDs(ctx context.Context) ([]string, error) {
	return r.scanIDs(ctx, r.tables.SampleRequests)
}

func (r *ConsistencyDynamoReader) ListSampleItems(ctx context.Context) ([]entities.SampleItem, error) {
	rows, err := scanAll[sampleLineItem](ctx, r.ddb, r.tables.SampleItems)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SampleItem, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromSampleLineItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ConsistencyDynamoReader) scanIDs(ctx context.Context, table string) ([]string, error) {
	type idOnly struct {
		ID string `dynamodbav:"id"`
	}
	rows, err := scanAll[idOnly](ctx, r.ddb, table)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, it := range rows {
		out = append(out, it.ID)
	}
	sort.Strings(out)
	return out, nil
}
