package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a quotation.
//
// Quotations are created and approved by the quoting workflow. This service
// only reads them and flips APPROVED quotations to CONVERTED.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "DRAFT"
	QuotationStatusSent      QuotationStatus = "SENT"
	QuotationStatusApproved  QuotationStatus = "APPROVED"
	QuotationStatusRejected  QuotationStatus = "REJECTED"
	QuotationStatusExpired   QuotationStatus = "EXPIRED"
	QuotationStatusConverted QuotationStatus = "CONVERTED"
)

// Valid reports whether s is a known quotation status.
func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusApproved,
		QuotationStatusRejected, QuotationStatusExpired, QuotationStatusConverted:
		return true
	}
	return false
}

// QuotationItem is one priced line of a quotation.
type QuotationItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// LineTotal is quantity * unit price.
func (i QuotationItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Quotation is a priced offer awaiting customer approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items are embedded as a list attribute
//
// Version increases by one on every successful write.
type Quotation struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Status     QuotationStatus `json:"status"`
	Items      []QuotationItem `json:"items"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Expired reports whether the quotation validity window has passed at now.
func (q Quotation) Expired(now time.Time) bool {
	return q.ValidUntil != nil && q.ValidUntil.Before(now)
}

// Total sums the line totals of the quotation.
func (q Quotation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}
