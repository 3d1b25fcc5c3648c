package repository

import (
	"context"
	"sort"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"
)

type SampleRequestDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.ISampleRequestRepository = (*SampleRequestDynamoRepository)(nil)

func NewSampleRequestDynamoRepository(ddb DynamoAPI, tables Tables) *SampleRequestDynamoRepository {
	return &SampleRequestDynamoRepository{ddb: ddb, tables: tables}
}

func (r *SampleRequestDynamoRepository) GetByRequestNumber(ctx context.Context, requestNumber string) (entities.SampleRequest, error) {
	var key keyItem
	found, err := getItem(ctx, r.ddb, r.tables.Keys, stringKey("key", interfaces.KeyPrefixRequestNumber+requestNumber), &key)
	if err != nil || !found {
		return entities.SampleRequest{}, err
	}

	var it sampleRequestItem
	found, err = getItem(ctx, r.ddb, r.tables.SampleRequests, stringKey("id", key.OwnerID), &it)
	if err != nil || !found {
		return entities.SampleRequest{}, err
	}
	req := fromSampleRequestItem(it)

	rows, err := queryAll[sampleLineItem](ctx, r.ddb, partitionQuery(r.tables.SampleItems, "sample_request_id", req.ID))
	if err != nil {
		return entities.SampleRequest{}, err
	}
	for _, row := range rows {
		req.Items = append(req.Items, fromSampleLineItem(row))
	}
	sort.Slice(req.Items, func(i, j int) bool { return req.Items[i].ID < req.Items[j].ID })
	return req, nil
}
