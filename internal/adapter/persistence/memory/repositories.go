package memory

import (
	"context"
	"sort"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"
)

type QuotationRepository struct{ s *Store }

func NewQuotationRepository(s *Store) *QuotationRepository { return &QuotationRepository{s: s} }

func (r *QuotationRepository) GetByID(_ context.Context, id string) (entities.Quotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q, ok := r.s.quotations[id]
	if !ok {
		return entities.Quotation{}, nil
	}
	q.Items = append([]entities.QuotationItem(nil), q.Items...)
	return q, nil
}

type ProductRepository struct{ s *Store }

func NewProductRepository(s *Store) *ProductRepository { return &ProductRepository{s: s} }

func (r *ProductRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.products[id], nil
}

type OrderRepository struct{ s *Store }

func NewOrderRepository(s *Store) *OrderRepository { return &OrderRepository{s: s} }

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders[id], nil
}

func (r *OrderRepository) GetByQuotationID(_ context.Context, quotationID string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if id, ok := r.s.keys[interfaces.KeyPrefixQuotation+quotationID]; ok {
		return r.s.orders[id], nil
	}
	for _, o := range r.s.orders {
		if o.QuotationID == quotationID {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderRepository) ListItems(_ context.Context, orderID string) ([]entities.OrderItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entities.OrderItem
	for _, it := range r.s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sortedOrderItems(out)
	return out, nil
}

func (r *OrderRepository) ListStatusHistory(_ context.Context, orderID string) ([]entities.OrderStatusHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entities.OrderStatusHistory
	for _, h := range r.s.history {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	sortedHistory(out)
	return out, nil
}

type SampleRequestRepository struct{ s *Store }

func NewSampleRequestRepository(s *Store) *SampleRequestRepository {
	return &SampleRequestRepository{s: s}
}

func (r *SampleRequestRepository) GetByRequestNumber(_ context.Context, requestNumber string) (entities.SampleRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.keys[interfaces.KeyPrefixRequestNumber+requestNumber]
	if !ok {
		return entities.SampleRequest{}, nil
	}
	req := r.s.sampleRequests[id]
	for _, it := range r.s.sampleItems {
		if it.SampleRequestID == id {
			req.Items = append(req.Items, it)
		}
	}
	sort.Slice(req.Items, func(i, j int) bool { return req.Items[i].ID < req.Items[j].ID })
	return req, nil
}
