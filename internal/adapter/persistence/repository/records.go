package repository

import (
	"order_core/internal/domain/entities"
)

// Row shapes as stored in DynamoDB. Money is kept as decimal strings and
// times as RFC3339Nano strings.

type quotationLine struct {
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int64  `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type quotationItem struct {
	ID         string          `dynamodbav:"id"`
	CustomerID string          `dynamodbav:"customer_id"`
	Status     string          `dynamodbav:"status"`
	Items      []quotationLine `dynamodbav:"items"`
	ValidUntil string          `dynamodbav:"valid_until,omitempty"`
	Version    int64           `dynamodbav:"version"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

type productItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	StockQuantity int64  `dynamodbav:"stock_quantity"`
	Version       int64  `dynamodbav:"version"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type orderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	QuotationID string `dynamodbav:"quotation_id"`
	CustomerID  string `dynamodbav:"customer_id"`
	Status      string `dynamodbav:"status"`
	TotalAmount string `dynamodbav:"total_amount"`
	Version     int64  `dynamodbav:"version"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type orderLineItem struct {
	OrderID     string `dynamodbav:"order_id"`
	ID          string `dynamodbav:"id"`
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int64  `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	LineTotal   string `dynamodbav:"line_total"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type statusHistoryItem struct {
	OrderID    string `dynamodbav:"order_id"`
	ID         string `dynamodbav:"id"`
	Sequence   int64  `dynamodbav:"sequence"`
	FromStatus string `dynamodbav:"from_status,omitempty"`
	ToStatus   string `dynamodbav:"to_status"`
	Actor      string `dynamodbav:"actor"`
	Note       string `dynamodbav:"note,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type customerAttr struct {
	CompanyName   string `dynamodbav:"company_name,omitempty"`
	ContactPerson string `dynamodbav:"contact_person"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`
}

type destinationAttr struct {
	CompanyName   string `dynamodbav:"company_name,omitempty"`
	ContactPerson string `dynamodbav:"contact_person"`
	Phone         string `dynamodbav:"phone"`
	PostalCode    string `dynamodbav:"postal_code,omitempty"`
	Address       string `dynamodbav:"address"`
	IsPrimary     bool   `dynamodbav:"is_primary"`
}

type sampleRequestItem struct {
	ID            string            `dynamodbav:"id"`
	RequestNumber string            `dynamodbav:"request_number"`
	UserID        string            `dynamodbav:"user_id,omitempty"`
	Status        string            `dynamodbav:"status"`
	Customer      customerAttr      `dynamodbav:"customer"`
	DeliveryType  string            `dynamodbav:"delivery_type"`
	Destinations  []destinationAttr `dynamodbav:"destinations"`
	Message       string            `dynamodbav:"message"`
	Urgency       string            `dynamodbav:"urgency,omitempty"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

type sampleLineItem struct {
	SampleRequestID string         `dynamodbav:"sample_request_id"`
	ID              string         `dynamodbav:"id"`
	ProductID       string         `dynamodbav:"product_id,omitempty"`
	ProductName     string         `dynamodbav:"product_name"`
	Category        string         `dynamodbav:"category"`
	Quantity        int64          `dynamodbav:"quantity"`
	Specifications  map[string]any `dynamodbav:"specifications,omitempty"`
	Notes           string         `dynamodbav:"notes,omitempty"`
	CreatedAt       string         `dynamodbav:"created_at"`
}

// keyItem is one uniqueness key; OwnerID is the row that claimed it.
type keyItem struct {
	Key     string `dynamodbav:"key"`
	OwnerID string `dynamodbav:"owner_id"`
}

type counterItem struct {
	Name  string `dynamodbav:"name"`
	Value int64  `dynamodbav:"value"`
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	q := entities.Quotation{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Status:     entities.QuotationStatus(it.Status),
		ValidUntil: parseOptionalTime(it.ValidUntil),
		Version:    it.Version,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
	for _, l := range it.Items {
		q.Items = append(q.Items, entities.QuotationItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   parseDecimal(l.UnitPrice),
		})
	}
	return q
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:            it.ID,
		Name:          it.Name,
		StockQuantity: it.StockQuantity,
		Version:       it.Version,
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		QuotationID: o.QuotationID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount.String(),
		Version:     o.Version,
		CreatedAt:   formatTime(o.CreatedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		QuotationID: it.QuotationID,
		CustomerID:  it.CustomerID,
		Status:      entities.OrderStatus(it.Status),
		TotalAmount: parseDecimal(it.TotalAmount),
		Version:     it.Version,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toOrderLineItem(it entities.OrderItem) orderLineItem {
	return orderLineItem{
		OrderID:     it.OrderID,
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice.String(),
		LineTotal:   it.LineTotal.String(),
		CreatedAt:   formatTime(it.CreatedAt),
	}
}

func fromOrderLineItem(it orderLineItem) entities.OrderItem {
	return entities.OrderItem{
		ID:          it.ID,
		OrderID:     it.OrderID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   parseDecimal(it.UnitPrice),
		LineTotal:   parseDecimal(it.LineTotal),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

func toStatusHistoryItem(h entities.OrderStatusHistory) statusHistoryItem {
	return statusHistoryItem{
		OrderID:    h.OrderID,
		ID:         h.ID,
		Sequence:   h.Sequence,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		Actor:      h.Actor,
		Note:       h.Note,
		CreatedAt:  formatTime(h.CreatedAt),
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.OrderStatusHistory {
	return entities.OrderStatusHistory{
		ID:         it.ID,
		OrderID:    it.OrderID,
		Sequence:   it.Sequence,
		FromStatus: entities.OrderStatus(it.FromStatus),
		ToStatus:   entities.OrderStatus(it.ToStatus),
		Actor:      it.Actor,
		Note:       it.Note,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

func toSampleRequestItem(r entities.SampleRequest) sampleRequestItem {
	dests := make([]destinationAttr, 0, len(r.Destinations))
	for _, d := range r.Destinations {
		dests = append(dests, destinationAttr(d))
	}
	return sampleRequestItem{
		ID:            r.ID,
		RequestNumber: r.RequestNumber,
		UserID:        r.UserID,
		Status:        string(r.Status),
		Customer:      customerAttr(r.Customer),
		DeliveryType:  string(r.DeliveryType),
		Destinations:  dests,
		Message:       r.Message,
		Urgency:       r.Urgency,
		CreatedAt:     formatTime(r.CreatedAt),
	}
}

func fromSampleRequestItem(it sampleRequestItem) entities.SampleRequest {
	r := entities.SampleRequest{
		ID:            it.ID,
		RequestNumber: it.RequestNumber,
		UserID:        it.UserID,
		Status:        entities.SampleRequestStatus(it.Status),
		Customer:      entities.CustomerInfo(it.Customer),
		DeliveryType:  entities.DeliveryType(it.DeliveryType),
		Message:       it.Message,
		Urgency:       it.Urgency,
		CreatedAt:     parseTime(it.CreatedAt),
	}
	for _, d := range it.Destinations {
		r.Destinations = append(r.Destinations, entities.DeliveryDestination(d))
	}
	return r
}

func toSampleLineItem(it entities.SampleItem) sampleLineItem {
	return sampleLineItem{
		SampleRequestID: it.SampleRequestID,
		ID:              it.ID,
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		Category:        it.Category,
		Quantity:        it.Quantity,
		Specifications:  it.Specifications,
		Notes:           it.Notes,
		CreatedAt:       formatTime(it.CreatedAt),
	}
}

func fromSampleLineItem(it sampleLineItem) entities.SampleItem {
	var specs entities.Specifications
	if len(it.Specifications) > 0 {
		specs = entities.Specifications(it.Specifications)
	}
	return entities.SampleItem{
		ID:              it.ID,
		SampleRequestID: it.SampleRequestID,
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		Category:        it.Category,
		Quantity:        it.Quantity,
		Specifications:  specs,
		Notes:           it.Notes,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
