package response

import (
	"time"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase"
)

type SampleRequestResponse struct {
	Success          bool   `json:"success"`
	RequestID        string `json:"requestId"`
	SampleItemsCount int    `json:"sampleItemsCount"`
	EmailSent        bool   `json:"emailSent"`
}

func FromSampleRequest(r usecase.SampleRequestResult) SampleRequestResponse {
	return SampleRequestResponse{
		Success:          true,
		RequestID:        r.RequestNumber,
		SampleItemsCount: r.ItemCount,
		EmailSent:        r.EmailSent,
	}
}

type SampleItemResponse struct {
	ProductID      string         `json:"productId,omitempty"`
	ProductName    string         `json:"productName"`
	Category       string         `json:"category"`
	Quantity       int64          `json:"quantity"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

type DestinationResponse struct {
	CompanyName   string `json:"companyName,omitempty"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	PostalCode    string `json:"postalCode,omitempty"`
	Address       string `json:"address"`
	IsPrimary     bool   `json:"isPrimary"`
}

type SampleRequestDetailsResponse struct {
	RequestID    string                `json:"requestId"`
	Status       string                `json:"status"`
	DeliveryType string                `json:"deliveryType"`
	Urgency      string                `json:"urgency,omitempty"`
	Message      string                `json:"message"`
	Destinations []DestinationResponse `json:"deliveryDestinations"`
	SampleItems  []SampleItemResponse  `json:"sampleItems"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func FromSampleRequestDetails(r entities.SampleRequest) SampleRequestDetailsResponse {
	res := SampleRequestDetailsResponse{
		RequestID:    r.RequestNumber,
		Status:       string(r.Status),
		DeliveryType: string(r.DeliveryType),
		Urgency:      r.Urgency,
		Message:      r.Message,
		Destinations: make([]DestinationResponse, 0, len(r.Destinations)),
		SampleItems:  make([]SampleItemResponse, 0, len(r.Items)),
		CreatedAt:    r.CreatedAt,
	}
	for _, d := range r.Destinations {
		res.Destinations = append(res.Destinations, DestinationResponse{
			CompanyName:   d.CompanyName,
			ContactPerson: d.ContactPerson,
			Phone:         d.Phone,
			PostalCode:    d.PostalCode,
			Address:       d.Address,
			IsPrimary:     d.IsPrimary,
		})
	}
	for _, it := range r.Items {
		res.SampleItems = append(res.SampleItems, SampleItemResponse{
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Category:       it.Category,
			Quantity:       it.Quantity,
			Specifications: it.Specifications,
			Notes:          it.Notes,
		})
	}
	return res
}
