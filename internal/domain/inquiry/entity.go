package inquiry

import (
	"errors"
	"strings"
	"time"
)

// Types
type InquiryType string

const (
	TypeGeneral    InquiryType = "general"
	TypeTestDrive  InquiryType = "test-drive"
	TypePurchase   InquiryType = "purchase"
	TypeInspection InquiryType = "inspection"
)

// Inquiry is a customer-submitted message. CarID is optional; nil means a
// general inquiry not tied to a vehicle. An inquiry is created once and
// never mutated.
type Inquiry struct {
	ID            string      `json:"id"`
	CarID         *string     `json:"car_id,omitempty"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	InquiryType   InquiryType `json:"inquiry_type"`
	Message       string      `json:"message"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Errors
var (
	ErrInvalidName    = errors.New("inquiry: invalid customer name")
	ErrInvalidEmail   = errors.New("inquiry: invalid customer email")
	ErrInvalidType    = errors.New("inquiry: invalid inquiry type")
	ErrInvalidMessage = errors.New("inquiry: invalid message")

	ErrNotFound = errors.New("inquiry: not found")
	ErrConflict = errors.New("inquiry: conflict")
)

// New constructs an Inquiry. carID may be nil for a general inquiry.
func New(
	id string,
	carID *string,
	name, email, phone string,
	inquiryType InquiryType,
	message string,
	createdAt time.Time,
) (Inquiry, error) {
	in := Inquiry{
		ID:            strings.TrimSpace(id),
		CarID:         normalizeStrPtr(carID),
		CustomerName:  strings.TrimSpace(name),
		CustomerEmail: strings.TrimSpace(email),
		CustomerPhone: strings.TrimSpace(phone),
		InquiryType:   inquiryType,
		Message:       strings.TrimSpace(message),
		CreatedAt:     createdAt.UTC(),
	}
	if err := in.validate(); err != nil {
		return Inquiry{}, err
	}
	return in, nil
}

// General reports whether the inquiry references no specific vehicle.
func (i Inquiry) General() bool {
	return i.CarID == nil
}

// Validation

func (i Inquiry) validate() error {
	if i.CustomerName == "" {
		return ErrInvalidName
	}
	if i.CustomerEmail == "" || !strings.Contains(i.CustomerEmail, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(string(i.InquiryType)) == "" {
		return ErrInvalidType
	}
	if i.Message == "" {
		return ErrInvalidMessage
	}
	return nil
}

// Helpers

func normalizeStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
