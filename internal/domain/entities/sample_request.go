package entities

import "time"

type SampleRequestStatus string

const (
	SampleRequestStatusReceived SampleRequestStatus = "received"
)

type DeliveryType string

const (
	DeliveryTypeNormal DeliveryType = "normal"
	DeliveryTypeOther  DeliveryType = "other"
)

// CustomerInfo identifies who asked for the samples.
type CustomerInfo struct {
	CompanyName   string `json:"company_name,omitempty"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// DeliveryDestination is one shipping address for the samples.
type DeliveryDestination struct {
	CompanyName   string `json:"company_name,omitempty"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	PostalCode    string `json:"postal_code,omitempty"`
	Address       string `json:"address"`
	IsPrimary     bool   `json:"is_primary"`
}

// SampleRequest is a bounded request for physical product samples.
//
// Storage model (DynamoDB):
//   - PK: id
//   - request_number is unique and human readable (PREFIX-YYYY-NNNN)
//   - destinations are embedded as a list attribute
type SampleRequest struct {
	ID            string                `json:"id"`
	RequestNumber string                `json:"request_number"`
	UserID        string                `json:"user_id,omitempty"`
	Status        SampleRequestStatus   `json:"status"`
	Customer      CustomerInfo          `json:"customer"`
	DeliveryType  DeliveryType          `json:"delivery_type"`
	Destinations  []DeliveryDestination `json:"destinations"`
	Message       string                `json:"message"`
	Urgency       string                `json:"urgency,omitempty"`
	Items         []SampleItem          `json:"items,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

type SampleItem struct {
	ID              string         `json:"id"`
	SampleRequestID string         `json:"sample_request_id"`
	ProductID       string         `json:"product_id,omitempty"`
	ProductName     string         `json:"product_name"`
	Category        string         `json:"category"`
	Quantity        int64          `json:"quantity"`
	Specifications  Specifications `json:"specifications,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
