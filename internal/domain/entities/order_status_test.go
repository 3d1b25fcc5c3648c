package entities

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusQuotationReceived, OrderStatusDataReceived, true},
		{OrderStatusQuotationReceived, OrderStatusProduction, true},
		{OrderStatusProduction, OrderStatusWorkOrder, false},
		{OrderStatusShipped, OrderStatusShipped, false},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusDataReceived, false},
		{OrderStatus("bogus"), OrderStatusDataReceived, false},
		{OrderStatusDataReceived, OrderStatus("bogus"), false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}
