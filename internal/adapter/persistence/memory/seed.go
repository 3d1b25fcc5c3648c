package memory

import (
	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"
)

// The Seed helpers write rows as given, bypassing every store rule. They
// exist to load fixtures, including deliberately inconsistent ones.

func (s *Store) SeedQuotation(q entities.Quotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.Items = append([]entities.QuotationItem(nil), q.Items...)
	s.quotations[q.ID] = q
}

func (s *Store) SeedProduct(p entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *Store) SeedOrder(o entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range o.Items {
		s.orderItems[it.ID] = it
	}
	o.Items = nil
	s.orders[o.ID] = o
	if o.QuotationID != "" {
		s.keys[interfaces.KeyPrefixQuotation+o.QuotationID] = o.ID
	}
}

func (s *Store) SeedOrderItem(it entities.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderItems[it.ID] = it
}

func (s *Store) SeedStatusHistory(h entities.OrderStatusHistory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[h.ID] = h
}

func (s *Store) SeedSampleItem(it entities.SampleItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampleItems[it.ID] = it
}
