package repository

import (
	"time"

	"order_core/internal/domain/entities"
)

// Quotations and products are written by other services; these encoders
// only build fixture rows.

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLine, 0, len(q.Items))
	for _, it := range q.Items {
		lines = append(lines, quotationLine{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.String(),
		})
	}
	return quotationItem{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Status:     string(q.Status),
		Items:      lines,
		ValidUntil: formatOptionalTime(q.ValidUntil),
		Version:    q.Version,
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:            p.ID,
		Name:          p.Name,
		StockQuantity: p.StockQuantity,
		Version:       p.Version,
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
