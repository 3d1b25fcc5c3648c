package memory

import (
	"context"
	"sort"

	"order_core/internal/domain/entities"
)

func (s *Store) ListProducts(_ context.Context) ([]entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListQuotationIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.quotations))
	for id := range s.quotations {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) ListOrders(_ context.Context) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListOrderItems(_ context.Context) ([]entities.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.OrderItem, 0, len(s.orderItems))
	for _, it := range s.orderItems {
		out = append(out, it)
	}
	sortedOrderItems(out)
	return out, nil
}

func (s *Store) ListStatusHistory(_ context.Context) ([]entities.OrderStatusHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.OrderStatusHistory, 0, len(s.history))
	for _, h := range s.history {
		out = append(out, h)
	}
	sortedHistory(out)
	return out, nil
}

func (s *Store) ListSampleRequestIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.sampleRequests))
	for id := range s.sampleRequests {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) ListSampleItems(_ context.Context) ([]entities.SampleItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.SampleItem, 0, len(s.sampleItems))
	for _, it := range s.sampleItems {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
