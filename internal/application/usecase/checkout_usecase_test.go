package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cardom "manchy/internal/domain/car"
	txdom "manchy/internal/domain/transaction"
)

func checkoutFixture(t *testing.T) (*CheckoutUsecase, *fakeCarRepo, *fakeTxRepo, *fakeGateway) {
	t.Helper()

	car, err := cardom.New("camry-1", "Toyota", "Camry", 2015, 8_500_000, cardom.ConditionUsed, cardom.StatusAvailable, time.Now())
	if err != nil {
		t.Fatalf("car fixture: %v", err)
	}

	cars := &fakeCarRepo{cars: []cardom.Car{car}}
	txs := &fakeTxRepo{}
	gw := &fakeGateway{}

	uc := NewCheckoutUsecase(cars, txs, gw, ModeRedirect)
	uc.WhatsAppNumber = "2347076470444"
	return uc, cars, txs, gw
}

func validCustomer() Customer {
	return Customer{Email: "jane@example.com", FullName: "Jane Doe", Phone: "08012345678"}
}

func TestParseCheckoutMode(t *testing.T) {
	if ParseCheckoutMode("inline") != ModeInline {
		t.Fatal("inline not recognized")
	}
	if ParseCheckoutMode(" inline ") != ModeInline {
		t.Fatal("inline must be trimmed")
	}
	for _, s := range []string{"", "redirect", "popup", "garbage"} {
		if got := ParseCheckoutMode(s); got != ModeRedirect {
			t.Fatalf("ParseCheckoutMode(%q) = %q, want redirect", s, got)
		}
	}
}

func TestCustomerValidateOrder(t *testing.T) {
	// Email is checked first, then name, then phone.
	cases := []struct {
		name string
		c    Customer
		want error
	}{
		{"all invalid reports email", Customer{}, ErrInvalidCustomerEmail},
		{"bad email", Customer{Email: "nope", FullName: "Jane Doe", Phone: "08012345678"}, ErrInvalidCustomerEmail},
		{"short name", Customer{Email: "a@b.com", FullName: " J ", Phone: "08012345678"}, ErrInvalidCustomerName},
		{"short phone", Customer{Email: "a@b.com", FullName: "Jane Doe", Phone: "080"}, ErrInvalidCustomerPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.c.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	if err := validCustomer().Validate(); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}
}

func TestStartInvalidCustomerNeverCallsGateway(t *testing.T) {
	uc, _, _, gw := checkoutFixture(t)

	_, err := uc.Start(context.Background(), "camry-1", Customer{Email: "bad"})
	if !errors.Is(err, ErrInvalidCustomerEmail) {
		t.Fatalf("got %v", err)
	}
	if len(gw.calls) != 0 {
		t.Fatal("gateway must not be called for invalid input")
	}
}

func TestStartUnknownCar(t *testing.T) {
	uc, _, _, gw := checkoutFixture(t)

	_, err := uc.Start(context.Background(), "ghost", validCustomer())
	if !errors.Is(err, cardom.ErrNotFound) {
		t.Fatalf("got %v", err)
	}
	if len(gw.calls) != 0 {
		t.Fatal("gateway must not be called for an unknown car")
	}
}

func TestStartInitializesKoboAmountWithReference(t *testing.T) {
	uc, _, _, gw := checkoutFixture(t)

	res, err := uc.Start(context.Background(), "camry-1", validCustomer())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(gw.calls) != 1 {
		t.Fatalf("gateway calls = %d", len(gw.calls))
	}

	call := gw.calls[0]
	if call.Amount != 850_000_000 {
		t.Fatalf("amount = %d, want price*100", call.Amount)
	}
	if !strings.HasPrefix(call.Reference, "MA-") {
		t.Fatalf("reference = %q, want MA- prefix", call.Reference)
	}
	if call.Metadata["car_id"] != "camry-1" {
		t.Fatalf("metadata = %v", call.Metadata)
	}

	if res.Mode != ModeRedirect {
		t.Fatalf("mode = %q", res.Mode)
	}
	if res.Session.AuthorizationURL == "" {
		t.Fatal("session missing authorization url")
	}
	if res.AmountKobo != call.Amount {
		t.Fatalf("result amount %d != gateway amount %d", res.AmountKobo, call.Amount)
	}
}

func TestStartGatewayFailureWritesNothing(t *testing.T) {
	uc, _, txs, gw := checkoutFixture(t)
	gw.failErr = errors.New("gateway down")

	if _, err := uc.Start(context.Background(), "camry-1", validCustomer()); err == nil {
		t.Fatal("expected error")
	}
	if len(txs.created) != 0 {
		t.Fatal("gateway failure must not record a transaction")
	}
}

func TestRecordPayment(t *testing.T) {
	uc, _, txs, _ := checkoutFixture(t)

	res, err := uc.RecordPayment(context.Background(), "camry-1", validCustomer(), "MA-ref-1")
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if !res.Recorded {
		t.Fatal("expected recorded=true")
	}
	if len(txs.created) != 1 {
		t.Fatalf("transactions = %d", len(txs.created))
	}

	tx := txs.created[0]
	if tx.CarID != "camry-1" || tx.Amount != 8_500_000 || tx.PaymentReference != "MA-ref-1" {
		t.Fatalf("transaction = %+v", tx)
	}
	if tx.PaymentStatus != txdom.StatusSuccess {
		t.Fatalf("status = %q", tx.PaymentStatus)
	}
	if !strings.Contains(res.FollowUpLink, "wa.me/2347076470444") {
		t.Fatalf("follow-up link = %q", res.FollowUpLink)
	}
	if !strings.Contains(res.FollowUpLink, "MA-ref-1") {
		t.Fatalf("follow-up link missing reference: %q", res.FollowUpLink)
	}
}

func TestRecordPaymentEmptyReference(t *testing.T) {
	uc, _, _, _ := checkoutFixture(t)

	_, err := uc.RecordPayment(context.Background(), "camry-1", validCustomer(), "  ")
	if !errors.Is(err, txdom.ErrInvalidReference) {
		t.Fatalf("got %v", err)
	}
}

func TestRecordPaymentStoreFailureDoesNotHideSuccess(t *testing.T) {
	uc, _, txs, _ := checkoutFixture(t)
	txs.createErr = errStoreDown

	res, err := uc.RecordPayment(context.Background(), "camry-1", validCustomer(), "MA-ref-2")
	if err != nil {
		t.Fatalf("store failure must not surface as an error: %v", err)
	}
	if res.Recorded {
		t.Fatal("expected recorded=false")
	}
	if res.Transaction.PaymentReference != "MA-ref-2" {
		t.Fatalf("transaction = %+v", res.Transaction)
	}
	if res.FollowUpLink == "" {
		t.Fatal("follow-up link must survive a bookkeeping failure")
	}
}
