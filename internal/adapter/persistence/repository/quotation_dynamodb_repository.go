package repository

import (
	"context"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"
)

// QuotationDynamoRepository reads quotations. Status changes go through the
// unit of work.
type QuotationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tables Tables) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{ddb: ddb, tableName: tables.Quotations}
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	var it quotationItem
	found, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}
