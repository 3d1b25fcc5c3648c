package request

import (
	"strings"

	"order_core/internal/domain/entities"
)

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// ResolveStatus normalises the requested status to its canonical upper-case
// form. The empty status is returned for blank input.
func (r OrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
