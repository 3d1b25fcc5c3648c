package entities

// OrderStatus is the production workflow state of an order.
type OrderStatus string

const (
	OrderStatusQuotationReceived OrderStatus = "QUOTATION_RECEIVED"
	OrderStatusDataReceived      OrderStatus = "DATA_RECEIVED"
	OrderStatusWorkOrder         OrderStatus = "WORK_ORDER"
	OrderStatusContractSent      OrderStatus = "CONTRACT_SENT"
	OrderStatusContractSigned    OrderStatus = "CONTRACT_SIGNED"
	OrderStatusProduction        OrderStatus = "PRODUCTION"
	OrderStatusStockIn           OrderStatus = "STOCK_IN"
	OrderStatusShipped           OrderStatus = "SHIPPED"
	OrderStatusDelivered         OrderStatus = "DELIVERED"
	OrderStatusCancelled         OrderStatus = "CANCELLED"
)

// InitialOrderStatus is the status every converted order starts in.
const InitialOrderStatus = OrderStatusQuotationReceived

var orderStatusSequence = []OrderStatus{
	OrderStatusQuotationReceived,
	OrderStatusDataReceived,
	OrderStatusWorkOrder,
	OrderStatusContractSent,
	OrderStatusContractSigned,
	OrderStatusProduction,
	OrderStatusStockIn,
	OrderStatusShipped,
	OrderStatusDelivered,
}

func (s OrderStatus) step() int {
	for i, v := range orderStatusSequence {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusCancelled || s.step() >= 0
}

// Final reports whether no further transition is allowed from s.
func (s OrderStatus) Final() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the workflow allows moving from s to next.
// Statuses only move forward; CANCELLED is reachable from any non-final status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s.Final() || s == next {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return next.step() > s.step()
}
