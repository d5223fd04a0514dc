package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	cardom "manchy/internal/domain/car"
	txdom "manchy/internal/domain/transaction"
)

// CheckoutMode selects the payment strategy behind the orchestrator.
type CheckoutMode string

const (
	// ModeRedirect initializes server-side and navigates the customer to
	// the gateway's authorization URL; the gateway owns all subsequent UX.
	ModeRedirect CheckoutMode = "redirect"
	// ModeInline initializes server-side for the gateway-hosted popup; the
	// browser callback posts the reference back to RecordPayment.
	ModeInline CheckoutMode = "inline"
)

// ParseCheckoutMode defaults to ModeRedirect.
func ParseCheckoutMode(s string) CheckoutMode {
	if CheckoutMode(strings.TrimSpace(s)) == ModeInline {
		return ModeInline
	}
	return ModeRedirect
}

// Customer carries the fields collected before a payment.
type Customer struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// Validation errors, checked fail-fast in field order.
var (
	ErrInvalidCustomerEmail = errors.New("checkout: valid email address is required")
	ErrInvalidCustomerName  = errors.New("checkout: full name is required")
	ErrInvalidCustomerPhone = errors.New("checkout: valid phone number is required")
)

// Validate checks email, then name, then phone; the first failing field
// aborts before any remote call is made.
func (c Customer) Validate() error {
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidCustomerEmail
	}
	if len(strings.TrimSpace(c.FullName)) < 2 {
		return ErrInvalidCustomerName
	}
	if len(strings.TrimSpace(c.Phone)) < 10 {
		return ErrInvalidCustomerPhone
	}
	return nil
}

// PaymentInit is the orchestrator's request to the gateway client.
type PaymentInit struct {
	Email     string
	Amount    int64 // minor units (kobo)
	Reference string
	Metadata  map[string]any
}

// PaymentSession is what the gateway hands back on initialization.
type PaymentSession struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaymentGateway is the outbound port to the hosted payment provider.
type PaymentGateway interface {
	Initialize(ctx context.Context, in PaymentInit) (PaymentSession, error)
}

// CheckoutUsecase drives the end-to-end purchase-intent flow for a single
// vehicle: local validation, gateway initialization, and post-callback
// record keeping.
type CheckoutUsecase struct {
	cars    cardom.Repository
	txs     txdom.Repository
	gateway PaymentGateway
	mode    CheckoutMode

	// WhatsApp follow-up number for confirmation deep links.
	WhatsAppNumber string
}

// NewCheckoutUsecase initializes the orchestrator.
func NewCheckoutUsecase(
	cars cardom.Repository,
	txs txdom.Repository,
	gateway PaymentGateway,
	mode CheckoutMode,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cars:    cars,
		txs:     txs,
		gateway: gateway,
		mode:    mode,
	}
}

// Mode returns the configured strategy.
func (uc *CheckoutUsecase) Mode() CheckoutMode {
	return uc.mode
}

// StartResult tells the caller how to continue the payment.
type StartResult struct {
	Mode       CheckoutMode   `json:"mode"`
	Session    PaymentSession `json:"session"`
	AmountKobo int64          `json:"amount"`
}

// Start validates the customer, then initializes a payment for the car's
// price in kobo. Validation failures return before any remote call; a
// gateway failure writes nothing.
func (uc *CheckoutUsecase) Start(ctx context.Context, carID string, customer Customer) (StartResult, error) {
	if err := customer.Validate(); err != nil {
		return StartResult{}, err
	}

	c, err := uc.cars.GetByID(ctx, carID)
	if err != nil {
		return StartResult{}, err
	}

	init := PaymentInit{
		Email:     strings.TrimSpace(customer.Email),
		Amount:    c.AmountKobo(),
		Reference: "MA-" + uuid.NewString(),
		Metadata: map[string]any{
			"car_id":         c.ID,
			"car":            c.DisplayName(),
			"customer_name":  strings.TrimSpace(customer.FullName),
			"customer_phone": strings.TrimSpace(customer.Phone),
		},
	}

	session, err := uc.gateway.Initialize(ctx, init)
	if err != nil {
		log.Printf("[checkout] initialize failed car=%s err=%v", c.ID, err)
		return StartResult{}, err
	}

	return StartResult{
		Mode:       uc.mode,
		Session:    session,
		AmountKobo: init.Amount,
	}, nil
}

// RecordResult is the outcome of the post-callback bookkeeping step.
type RecordResult struct {
	Transaction txdom.Transaction `json:"transaction"`
	// Recorded is false when the payment succeeded but the store write
	// failed; payment success is never rolled back for a bookkeeping error.
	Recorded bool `json:"recorded"`
	// FollowUpLink is the WhatsApp confirmation deep link.
	FollowUpLink string `json:"follow_up_link,omitempty"`
}

// RecordPayment persists the Transaction for a completed gateway callback.
// It is only ever invoked after the external callback, never speculatively.
func (uc *CheckoutUsecase) RecordPayment(ctx context.Context, carID string, customer Customer, reference string) (RecordResult, error) {
	if err := customer.Validate(); err != nil {
		return RecordResult{}, err
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return RecordResult{}, txdom.ErrInvalidReference
	}

	c, err := uc.cars.GetByID(ctx, carID)
	if err != nil {
		return RecordResult{}, err
	}

	t, err := txdom.New(
		"", c.ID,
		customer.FullName, customer.Email, customer.Phone,
		c.Price,
		reference,
		txdom.StatusSuccess,
		time.Now().UTC(),
	)
	if err != nil {
		return RecordResult{}, err
	}

	link := ""
	if uc.WhatsAppNumber != "" {
		link = cardom.WhatsAppLink(uc.WhatsAppNumber, cardom.PaymentConfirmationMessage(c, reference))
	}

	created, err := uc.txs.Create(ctx, t)
	if err != nil {
		// The payment already succeeded at the gateway; surface the
		// bookkeeping failure without hiding the success.
		log.Printf("[checkout] transaction record failed car=%s ref=%s err=%v", c.ID, reference, err)
		return RecordResult{Transaction: t, Recorded: false, FollowUpLink: link}, nil
	}

	return RecordResult{Transaction: created, Recorded: true, FollowUpLink: link}, nil
}
