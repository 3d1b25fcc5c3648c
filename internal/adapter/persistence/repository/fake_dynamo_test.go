package repository

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo serves GetItem from rows, Query and Scan from pages, and records
// every write it is asked to perform.
type fakeDynamo struct {
	rows  map[string]map[string]types.AttributeValue
	pages map[string][][]map[string]types.AttributeValue

	updates    []*dynamodb.UpdateItemInput
	queries    []*dynamodb.QueryInput
	transacts  []*dynamodb.TransactWriteItemsInput
	updateOut  map[string]types.AttributeValue
	transactFn func(*dynamodb.TransactWriteItemsInput) error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		rows:  map[string]map[string]types.AttributeValue{},
		pages: map[string][][]map[string]types.AttributeValue{},
	}
}

func rowKey(table string, key map[string]types.AttributeValue) string {
	parts := make([]string, 0, len(key))
	for name, v := range key {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			parts = append(parts, name+"="+s.Value)
		}
	}
	sort.Strings(parts)
	return table + "|" + strings.Join(parts, ",")
}

func (f *fakeDynamo) seed(t *testing.T, table, hashKey, id string, row any) {
	t.Helper()
	av, err := attributevalue.MarshalMap(row)
	if err != nil {
		t.Fatalf("marshal seed row: %v", err)
	}
	f.rows[rowKey(table, stringKey(hashKey, id))] = av
}

func (f *fakeDynamo) page(t *testing.T, table string, rows ...any) {
	t.Helper()
	var items []map[string]types.AttributeValue
	for _, r := range rows {
		av, err := attributevalue.MarshalMap(r)
		if err != nil {
			t.Fatalf("marshal page row: %v", err)
		}
		items = append(items, av)
	}
	f.pages[table] = append(f.pages[table], items)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.rows[rowKey(aws.ToString(in.TableName), in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	items, next := f.nextPage(aws.ToString(in.TableName), in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	items, next := f.nextPage(aws.ToString(in.TableName), in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: next}, nil
}

// nextPage encodes the page index in LastEvaluatedKey.
func (f *fakeDynamo) nextPage(table string, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	pages := f.pages[table]
	idx := 0
	if v, ok := start["page"].(*types.AttributeValueMemberN); ok {
		idx = len(v.Value)
	}
	if idx >= len(pages) {
		return nil, nil
	}
	var next map[string]types.AttributeValue
	if idx+1 < len(pages) {
		next = map[string]types.AttributeValue{"page": &types.AttributeValueMemberN{Value: strings.Repeat("1", idx+1)}}
	}
	return pages[idx], next
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.transactFn != nil {
		return &dynamodb.TransactWriteItemsOutput{}, f.transactFn(in)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
