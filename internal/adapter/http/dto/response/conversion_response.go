package response

import (
	"order_core/internal/domain/domainerr"
	"order_core/internal/usecase"
)

const alreadyConvertedMessage = "already converted"

type ShortageResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Requested   int64  `json:"requested"`
	Available   int64  `json:"available"`
	Shortage    int64  `json:"shortage"`
}

type ConvertResponse struct {
	Success      bool   `json:"success"`
	OrderID      string `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	StockUpdated bool   `json:"stockUpdated,omitempty"`
	Message      string `json:"message,omitempty"`
}

// ConvertFailureResponse is written for a rejected conversion. The shortfall
// list is present only for insufficient stock.
type ConvertFailureResponse struct {
	Success           bool               `json:"success"`
	Error             string             `json:"error"`
	Code              string             `json:"code"`
	InsufficientStock []ShortageResponse `json:"insufficientStock,omitempty"`
}

type EligibilityResponse struct {
	Eligible          bool               `json:"eligible"`
	Reason            string             `json:"reason,omitempty"`
	ExistingOrderID   string             `json:"existingOrderId,omitempty"`
	InsufficientStock []ShortageResponse `json:"insufficientStock,omitempty"`
}

func FromConversion(r usecase.ConversionResult) ConvertResponse {
	res := ConvertResponse{Success: true, OrderID: r.OrderID, OrderNumber: r.OrderNumber}
	if r.AlreadyConverted {
		res.Message = alreadyConvertedMessage
		return res
	}
	res.StockUpdated = r.StockUpdated
	return res
}

func FromEligibility(e usecase.Eligibility) EligibilityResponse {
	return EligibilityResponse{
		Eligible:          e.Eligible,
		Reason:            e.Reason,
		ExistingOrderID:   e.ExistingOrderID,
		InsufficientStock: FromShortages(e.Shortages),
	}
}

func FromShortages(shortages []domainerr.Shortage) []ShortageResponse {
	if len(shortages) == 0 {
		return nil
	}
	out := make([]ShortageResponse, 0, len(shortages))
	for _, s := range shortages {
		out = append(out, ShortageResponse{
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			Requested:   s.Requested,
			Available:   s.Available,
			Shortage:    s.Shortage,
		})
	}
	return out
}
