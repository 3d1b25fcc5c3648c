package repository

import (
	"context"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"
)

type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tables Tables) *ProductDynamoRepository {
	return &ProductDynamoRepository{ddb: ddb, tableName: tables.Products}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}
