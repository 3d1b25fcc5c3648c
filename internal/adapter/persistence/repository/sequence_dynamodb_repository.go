package repository

import (
	"context"
	"fmt"

	"order_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SequenceDynamoRepository hands out numbers from atomic ADD counters, one
// row per name and year. A number drawn by a commit that later fails is
// skipped, never reissued.
type SequenceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISequenceGenerator = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb DynamoAPI, tables Tables) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{ddb: ddb, tableName: tables.Sequences}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey("name", counterName(name, year)),
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, unavailable("next sequence", err)
	}
	var c counterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &c); err != nil {
		return 0, err
	}
	return c.Value, nil
}

func counterName(name string, year int) string {
	return fmt.Sprintf("%s#%d", name, year)
}
