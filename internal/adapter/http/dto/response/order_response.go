package response

import (
	"time"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase"
)

type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

type StatusHistoryResponse struct {
	Sequence   int64     `json:"sequence"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	Actor      string    `json:"actor"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderResponse renders money as decimal strings so totals survive JSON
// without float rounding.
type OrderResponse struct {
	ID          string                  `json:"id"`
	OrderNumber string                  `json:"orderNumber"`
	QuotationID string                  `json:"quotationId"`
	CustomerID  string                  `json:"customerId"`
	Status      string                  `json:"status"`
	TotalAmount string                  `json:"totalAmount"`
	Version     int64                   `json:"version"`
	Items       []OrderItemResponse     `json:"items,omitempty"`
	History     []StatusHistoryResponse `json:"history,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		QuotationID: o.QuotationID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount.StringFixed(2),
		Version:     o.Version,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			LineTotal:   it.LineTotal.StringFixed(2),
		})
	}
	return res
}

func FromOrderDetails(d usecase.OrderDetails) OrderResponse {
	res := FromOrder(d.Order)
	for _, h := range d.History {
		res.History = append(res.History, StatusHistoryResponse{
			Sequence:   h.Sequence,
			FromStatus: string(h.FromStatus),
			ToStatus:   string(h.ToStatus),
			Actor:      h.Actor,
			Note:       h.Note,
			CreatedAt:  h.CreatedAt,
		})
	}
	return res
}
