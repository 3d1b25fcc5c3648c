package repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotationIDIndex = "quotation_id-index"

// Tables holds the physical table names.
//
// Layout:
//   - quotations, products, orders, sample_requests: PK id
//   - orders also carries the GSI quotation_id-index
//   - order_items, order_status_history: PK order_id, SK id
//   - sample_items: PK sample_request_id, SK id
//   - order_keys: PK key, holds the uniqueness keys (quotation#, order_number#, request_number#)
//   - sequences: PK name, atomic counters
type Tables struct {
	Quotations     string
	Products       string
	Orders         string
	OrderItems     string
	StatusHistory  string
	SampleRequests string
	SampleItems    string
	Keys           string
	Sequences      string
}

// NewTables prefixes every table name with prefix, which may be empty.
func NewTables(prefix string) Tables {
	return Tables{
		Quotations:     prefix + "quotations",
		Products:       prefix + "products",
		Orders:         prefix + "orders",
		OrderItems:     prefix + "order_items",
		StatusHistory:  prefix + "order_status_history",
		SampleRequests: prefix + "sample_requests",
		SampleItems:    prefix + "sample_items",
		Keys:           prefix + "order_keys",
		Sequences:      prefix + "sequences",
	}
}

// Definitions returns the CreateTable inputs for local and test setups.
// Every table uses on-demand billing.
func (t Tables) Definitions() []dynamodb.CreateTableInput {
	orders := hashTable(t.Orders, "id")
	orders.AttributeDefinitions = append(orders.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("quotation_id"),
		AttributeType: types.ScalarAttributeTypeS,
	})
	orders.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName:  aws.String(quotationIDIndex),
		KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("quotation_id"), KeyType: types.KeyTypeHash}},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}

	return []dynamodb.CreateTableInput{
		hashTable(t.Quotations, "id"),
		hashTable(t.Products, "id"),
		orders,
		rangeTable(t.OrderItems, "order_id", "id"),
		rangeTable(t.StatusHistory, "order_id", "id"),
		hashTable(t.SampleRequests, "id"),
		rangeTable(t.SampleItems, "sample_request_id", "id"),
		hashTable(t.Keys, "key"),
		hashTable(t.Sequences, "name"),
	}
}

func hashTable(name, hash string) dynamodb.CreateTableInput {
	return dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(hash), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash},
		},
	}
}

func rangeTable(name, hash, rng string) dynamodb.CreateTableInput {
	in := hashTable(name, hash)
	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String(rng), AttributeType: types.ScalarAttributeTypeS,
	})
	in.KeySchema = append(in.KeySchema, types.KeySchemaElement{
		AttributeName: aws.String(rng), KeyType: types.KeyTypeRange,
	})
	return in
}
