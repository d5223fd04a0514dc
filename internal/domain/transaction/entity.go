package transaction

import (
	"errors"
	"strings"
	"time"
)

// PaymentStatus is the gateway-facing outcome of a payment attempt.
type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "Success"
	StatusPending PaymentStatus = "Pending"
	StatusFailed  PaymentStatus = "Failed"
)

// Transaction records a payment attempt against a vehicle. It is created
// only after the gateway callback, never speculatively, and may later be
// updated for status reconciliation (last-write-wins, no versioning).
type Transaction struct {
	ID               string        `json:"id"`
	CarID            string        `json:"car_id"`
	CustomerName     string        `json:"customer_name"`
	CustomerEmail    string        `json:"customer_email"`
	CustomerPhone    string        `json:"customer_phone"`
	Amount           int64         `json:"amount"`
	PaymentReference string        `json:"payment_reference"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Errors
var (
	ErrInvalidCarID     = errors.New("transaction: invalid car id")
	ErrInvalidCustomer  = errors.New("transaction: invalid customer")
	ErrInvalidAmount    = errors.New("transaction: invalid amount")
	ErrInvalidReference = errors.New("transaction: invalid payment reference")
	ErrInvalidStatus    = errors.New("transaction: invalid payment status")

	ErrNotFound = errors.New("transaction: not found")
	ErrConflict = errors.New("transaction: conflict")
)

// New constructs a Transaction for a completed payment callback.
func New(
	id, carID, name, email, phone string,
	amount int64,
	reference string,
	status PaymentStatus,
	createdAt time.Time,
) (Transaction, error) {
	t := Transaction{
		ID:               strings.TrimSpace(id),
		CarID:            strings.TrimSpace(carID),
		CustomerName:     strings.TrimSpace(name),
		CustomerEmail:    strings.TrimSpace(email),
		CustomerPhone:    strings.TrimSpace(phone),
		Amount:           amount,
		PaymentReference: strings.TrimSpace(reference),
		PaymentStatus:    status,
		CreatedAt:        createdAt.UTC(),
		UpdatedAt:        createdAt.UTC(),
	}
	if err := t.validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (t Transaction) validate() error {
	if t.CarID == "" {
		return ErrInvalidCarID
	}
	if t.CustomerName == "" || t.CustomerEmail == "" {
		return ErrInvalidCustomer
	}
	if t.Amount < 0 {
		return ErrInvalidAmount
	}
	if t.PaymentReference == "" {
		return ErrInvalidReference
	}
	switch t.PaymentStatus {
	case StatusSuccess, StatusPending, StatusFailed:
		return nil
	default:
		return ErrInvalidStatus
	}
}
