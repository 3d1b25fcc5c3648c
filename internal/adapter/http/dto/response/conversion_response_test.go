package response

import (
	"encoding/json"
	"testing"

	"order_core/internal/domain/domainerr"
	"order_core/internal/usecase"
)

func TestFromConversion(t *testing.T) {
	res := FromConversion(usecase.ConversionResult{OrderID: "o-1", OrderNumber: "ORD-2026-000001", StockUpdated: true})
	body, _ := json.Marshal(res)
	if string(body) != `{"success":true,"orderId":"o-1","orderNumber":"ORD-2026-000001","stockUpdated":true}` {
		t.Fatalf("unexpected body: %s", body)
	}

	res = FromConversion(usecase.ConversionResult{OrderID: "o-1", OrderNumber: "ORD-2026-000001", AlreadyConverted: true})
	body, _ = json.Marshal(res)
	if string(body) != `{"success":true,"orderId":"o-1","orderNumber":"ORD-2026-000001","message":"already converted"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFromEligibility(t *testing.T) {
	res := FromEligibility(usecase.Eligibility{
		Reason:    "insufficient stock",
		Shortages: []domainerr.Shortage{{ProductID: "p-1", ProductName: "Pouch", Requested: 5, Available: 2, Shortage: 3}},
	})
	if res.Eligible || len(res.InsufficientStock) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.InsufficientStock[0].Shortage != 3 || res.InsufficientStock[0].ProductName != "Pouch" {
		t.Fatalf("unexpected shortage: %+v", res.InsufficientStock[0])
	}

	if got := FromShortages(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
