package repository

import (
	"context"
	"sort"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OrderDynamoRepository reads orders, their items and their status history.
//
// GetByQuotationID resolves through the quotation# key in order_keys, which
// supports a strongly consistent read. The quotation_id GSI is only a
// fallback for rows that predate the key table.
type OrderDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tables Tables) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tables: tables}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := getItem(ctx, r.ddb, r.tables.Orders, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByQuotationID(ctx context.Context, quotationID string) (entities.Order, error) {
	var key keyItem
	found, err := getItem(ctx, r.ddb, r.tables.Keys, stringKey("key", interfaces.KeyPrefixQuotation+quotationID), &key)
	if err != nil {
		return entities.Order{}, err
	}
	if found {
		return r.GetByID(ctx, key.OwnerID)
	}

	rows, err := queryAll[orderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Orders),
		IndexName:              aws.String(quotationIDIndex),
		KeyConditionExpression: aws.String("#qid = :qid"),
		ExpressionAttributeNames: map[string]string{
			"#qid": "quotation_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	})
	if err != nil || len(rows) == 0 {
		return entities.Order{}, err
	}
	return fromOrderItem(rows[0]), nil
}

func (r *OrderDynamoRepository) ListItems(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	rows, err := queryAll[orderLineItem](ctx, r.ddb, partitionQuery(r.tables.OrderItems, "order_id", orderID))
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

func (r *OrderDynamoRepository) ListStatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error) {
	rows, err := queryAll[statusHistoryItem](ctx, r.ddb, partitionQuery(r.tables.StatusHistory, "order_id", orderID))
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

// partitionQuery selects every row of one partition with a consistent read.
func partitionQuery(table, hashKey, value string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": hashKey,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: value},
		},
		ConsistentRead: aws.Bool(true),
	}
}

func sortOrderItems(items []entities.OrderItem) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

func sortHistory(rows []entities.OrderStatusHistory) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sequence != rows[j].Sequence {
			return rows[i].Sequence < rows[j].Sequence
		}
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
		return rows[i].ID < rows[j].ID
	})
}
