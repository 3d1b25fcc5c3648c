package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the binding order produced from an approved quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (quotation_id-index): quotation_id
//   - uniqueness of quotation_id and order_number is held by the order_keys table
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	QuotationID string          `json:"quotation_id"`
	CustomerID  string          `json:"customer_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Version     int64           `json:"version"`
	Items       []OrderItem     `json:"items,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItem is immutable once committed.
type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ItemsTotal sums the line totals of the order items.
func (o Order) ItemsTotal() decimal.Decimal {
	return SumLineTotals(o.Items)
}

// SumLineTotals sums LineTotal over items.
func SumLineTotals(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal)
	}
	return total
}

// OrderStatusHistory is an append-only record of one status transition.
// FromStatus is empty for the initial transition. Sequence is the order's
// version after the transition and orders the log.
type OrderStatusHistory struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"order_id"`
	Sequence   int64       `json:"sequence"`
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status"`
	Actor      string      `json:"actor"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
