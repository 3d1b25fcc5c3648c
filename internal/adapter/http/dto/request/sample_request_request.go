package request

import (
	"strings"

	"order_core/internal/domain/entities"
	"order_core/internal/usecase"
)

type CustomerInfoRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

type DeliveryDestinationRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	PostalCode    string `json:"postalCode"`
	Address       string `json:"address"`
	IsPrimary     bool   `json:"isPrimary"`
}

type SampleItemRequest struct {
	ProductID      string         `json:"productId"`
	ProductName    string         `json:"productName"`
	Category       string         `json:"category"`
	Quantity       int64          `json:"quantity"`
	Specifications map[string]any `json:"specifications"`
	Notes          string         `json:"notes"`
}

// SampleRequestRequest is the body of POST /v1/samples/requests. Shape rules
// are enforced by the use case so that guests and members share them.
type SampleRequestRequest struct {
	CustomerInfo         *CustomerInfoRequest         `json:"customerInfo"`
	DeliveryType         string                       `json:"deliveryType"`
	DeliveryDestinations []DeliveryDestinationRequest `json:"deliveryDestinations"`
	SampleItems          []SampleItemRequest          `json:"sampleItems"`
	Message              string                       `json:"message"`
	Urgency              string                       `json:"urgency"`
	PrivacyConsent       bool                         `json:"privacyConsent"`
}

func (r SampleRequestRequest) ToCommand(caller entities.Caller) usecase.SampleRequestCommand {
	cmd := usecase.SampleRequestCommand{
		Caller:         caller,
		DeliveryType:   strings.ToLower(strings.TrimSpace(r.DeliveryType)),
		Message:        r.Message,
		Urgency:        strings.ToLower(strings.TrimSpace(r.Urgency)),
		PrivacyConsent: r.PrivacyConsent,
	}
	if r.CustomerInfo != nil {
		cmd.Customer = &usecase.CustomerInput{
			CompanyName:   r.CustomerInfo.CompanyName,
			ContactPerson: r.CustomerInfo.ContactPerson,
			Email:         strings.TrimSpace(r.CustomerInfo.Email),
			Phone:         r.CustomerInfo.Phone,
		}
	}
	for _, d := range r.DeliveryDestinations {
		cmd.Destinations = append(cmd.Destinations, usecase.DestinationInput{
			CompanyName:   d.CompanyName,
			ContactPerson: d.ContactPerson,
			Phone:         d.Phone,
			PostalCode:    d.PostalCode,
			Address:       d.Address,
			IsPrimary:     d.IsPrimary,
		})
	}
	for _, it := range r.SampleItems {
		cmd.Items = append(cmd.Items, usecase.SampleItemInput{
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Category:       it.Category,
			Quantity:       it.Quantity,
			Specifications: it.Specifications,
			Notes:          it.Notes,
		})
	}
	return cmd
}
