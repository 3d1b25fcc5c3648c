// Package memory is an in-process Entity Store with the same commit
// semantics as the DynamoDB store: writes staged in a transaction are
// checked and applied under one lock, all or nothing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
)

// Store keeps every entity in maps guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	quotations     map[string]entities.Quotation
	products       map[string]entities.Product
	orders         map[string]entities.Order
	orderItems     map[string]entities.OrderItem
	history        map[string]entities.OrderStatusHistory
	sampleRequests map[string]entities.SampleRequest
	sampleItems    map[string]entities.SampleItem
	keys           map[string]string
	sequences      map[string]int64

	now        func() time.Time
	commitHook func(ops int) error
}

var (
	_ interfaces.IUnitOfWork              = (*Store)(nil)
	_ interfaces.IQuotationRepository     = (*QuotationRepository)(nil)
	_ interfaces.IProductRepository       = (*ProductRepository)(nil)
	_ interfaces.IOrderRepository         = (*OrderRepository)(nil)
	_ interfaces.ISampleRequestRepository = (*SampleRequestRepository)(nil)
	_ interfaces.ISequenceGenerator       = (*Store)(nil)
	_ interfaces.IConsistencyReader       = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		quotations:     map[string]entities.Quotation{},
		products:       map[string]entities.Product{},
		orders:         map[string]entities.Order{},
		orderItems:     map[string]entities.OrderItem{},
		history:        map[string]entities.OrderStatusHistory{},
		sampleRequests: map[string]entities.SampleRequest{},
		sampleItems:    map[string]entities.SampleItem{},
		keys:           map[string]string{},
		sequences:      map[string]int64{},
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// SetCommitHook installs fn to run before every commit is applied. A non-nil
// return aborts the commit with that error.
func (s *Store) SetCommitHook(fn func(ops int) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitHook = fn
}

// Transact implements interfaces.IUnitOfWork.
func (s *Store) Transact(ctx context.Context, fn func(tx interfaces.ITxn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &txn{}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.ops) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A caller that went away before commit gets a clean rollback.
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.commitHook != nil {
		if err := s.commitHook(len(tx.ops)); err != nil {
			return err
		}
	}

	// Uniqueness keys are checked first so that a losing racer reports the
	// duplicate rather than the version guard it also tripped.
	for _, op := range tx.ops {
		if op.key != "" {
			if _, taken := s.keys[op.key]; taken {
				return &interfaces.DuplicateKeyError{Key: op.key}
			}
		}
	}
	seen := map[string]struct{}{}
	for _, op := range tx.ops {
		if op.key == "" {
			continue
		}
		if _, dup := seen[op.key]; dup {
			return &interfaces.DuplicateKeyError{Key: op.key}
		}
		seen[op.key] = struct{}{}
	}
	for _, op := range tx.ops {
		if op.check == nil {
			continue
		}
		if err := op.check(s); err != nil {
			return err
		}
	}

	now := s.now()
	for _, op := range tx.ops {
		op.apply(s, now)
	}
	return nil
}

// Next implements interfaces.ISequenceGenerator.
func (s *Store) Next(ctx context.Context, name string, year int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := fmt.Sprintf("%s#%d", name, year)
	s.sequences[k]++
	return s.sequences[k], nil
}

type op struct {
	key   string
	check func(s *Store) error
	apply func(s *Store, now time.Time)
}

type txn struct {
	ops []op
}

func (t *txn) CreateOrder(o entities.Order) {
	items := make([]entities.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = nil

	t.ops = append(t.ops,
		op{key: interfaces.KeyPrefixQuotation + o.QuotationID, apply: func(s *Store, _ time.Time) {
			s.keys[interfaces.KeyPrefixQuotation+o.QuotationID] = o.ID
		}},
		op{key: interfaces.KeyPrefixOrderNumber + o.OrderNumber, apply: func(s *Store, _ time.Time) {
			s.keys[interfaces.KeyPrefixOrderNumber+o.OrderNumber] = o.ID
		}},
		op{
			check: func(s *Store) error {
				if _, exists := s.orders[o.ID]; exists {
					return &interfaces.DuplicateKeyError{Key: "order#" + o.ID}
				}
				if o.TotalAmount.IsNegative() {
					return errors.Wrap(interfaces.ErrConstraintViolation, "negative order total")
				}
				return nil
			},
			apply: func(s *Store, _ time.Time) { s.orders[o.ID] = o },
		},
	)
	for _, it := range items {
		t.ops = append(t.ops, op{
			check: func(*Store) error {
				if it.Quantity <= 0 {
					return errors.Wrapf(interfaces.ErrConstraintViolation, "order item %s quantity %d", it.ID, it.Quantity)
				}
				return nil
			},
			apply: func(s *Store, _ time.Time) { s.orderItems[it.ID] = it },
		})
	}
}

func (t *txn) AppendStatusHistory(h entities.OrderStatusHistory) {
	t.ops = append(t.ops, op{
		check: func(s *Store) error {
			if _, exists := s.history[h.ID]; exists {
				return &interfaces.DuplicateKeyError{Key: "history#" + h.ID}
			}
			return nil
		},
		apply: func(s *Store, _ time.Time) { s.history[h.ID] = h },
	})
}

func (t *txn) UpdateProductStock(productID string, newStock int64, expectedVersion int64) {
	t.ops = append(t.ops, op{
		check: func(s *Store) error {
			p, ok := s.products[productID]
			if !ok {
				return errors.Wrapf(interfaces.ErrConstraintViolation, "product %s does not exist", productID)
			}
			if p.Version != expectedVersion {
				return &interfaces.VersionMismatchError{Entity: "product", ID: productID, ExpectedVersion: expectedVersion}
			}
			if newStock < 0 {
				return errors.Wrapf(interfaces.ErrConstraintViolation, "product %s stock would be %d", productID, newStock)
			}
			return nil
		},
		apply: func(s *Store, now time.Time) {
			p := s.products[productID]
			p.StockQuantity = newStock
			p.Version = expectedVersion + 1
			p.UpdatedAt = now
			s.products[productID] = p
		},
	})
}

func (t *txn) UpdateQuotationStatus(quotationID string, status entities.QuotationStatus, expectedVersion int64) {
	t.ops = append(t.ops, op{
		check: func(s *Store) error {
			q, ok := s.quotations[quotationID]
			if !ok {
				return errors.Wrapf(interfaces.ErrConstraintViolation, "quotation %s does not exist", quotationID)
			}
			if q.Version != expectedVersion {
				return &interfaces.VersionMismatchError{Entity: "quotation", ID: quotationID, ExpectedVersion: expectedVersion}
			}
			return nil
		},
		apply: func(s *Store, now time.Time) {
			q := s.quotations[quotationID]
			q.Status = status
			q.Version = expectedVersion + 1
			q.UpdatedAt = now
			s.quotations[quotationID] = q
		},
	})
}

func (t *txn) UpdateOrderStatus(orderID string, status entities.OrderStatus, expectedVersion int64) {
	t.ops = append(t.ops, op{
		check: func(s *Store) error {
			o, ok := s.orders[orderID]
			if !ok {
				return errors.Wrapf(interfaces.ErrConstraintViolation, "order %s does not exist", orderID)
			}
			if o.Version != expectedVersion {
				return &interfaces.VersionMismatchError{Entity: "order", ID: orderID, ExpectedVersion: expectedVersion}
			}
			return nil
		},
		apply: func(s *Store, now time.Time) {
			o := s.orders[orderID]
			o.Status = status
			o.Version = expectedVersion + 1
			o.UpdatedAt = now
			s.orders[orderID] = o
		},
	})
}

func (t *txn) CreateSampleRequest(r entities.SampleRequest) {
	items := make([]entities.SampleItem, len(r.Items))
	copy(items, r.Items)
	r.Items = nil

	t.ops = append(t.ops,
		op{key: interfaces.KeyPrefixRequestNumber + r.RequestNumber, apply: func(s *Store, _ time.Time) {
			s.keys[interfaces.KeyPrefixRequestNumber+r.RequestNumber] = r.ID
		}},
		op{apply: func(s *Store, _ time.Time) { s.sampleRequests[r.ID] = r }},
	)
	for _, it := range items {
		t.ops = append(t.ops, op{
			check: func(*Store) error {
				if it.Quantity <= 0 {
					return errors.Wrapf(interfaces.ErrConstraintViolation, "sample item %s quantity %d", it.ID, it.Quantity)
				}
				return nil
			},
			apply: func(s *Store, _ time.Time) { s.sampleItems[it.ID] = it },
		})
	}
}

func sortedOrderItems(items []entities.OrderItem) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

func sortedHistory(rows []entities.OrderStatusHistory) {
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
