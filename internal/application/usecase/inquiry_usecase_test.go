package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cardom "manchy/internal/domain/car"
	inqdom "manchy/internal/domain/inquiry"
)

func inquiryFixture(t *testing.T) (*fakeInquiryRepo, *fakeCarRepo, *fakeMailer) {
	t.Helper()

	car, err := cardom.New("camry-1", "Toyota", "Camry", 2015, 8_500_000, cardom.ConditionUsed, cardom.StatusAvailable, time.Now())
	if err != nil {
		t.Fatalf("car fixture: %v", err)
	}
	return &fakeInquiryRepo{}, &fakeCarRepo{cars: []cardom.Car{car}}, &fakeMailer{}
}

func validInquiry() SubmitInquiryInput {
	return SubmitInquiryInput{
		CarID:         "camry-1",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "08012345678",
		InquiryType:   inqdom.TypeTestDrive,
		Message:       "When can I come in?",
	}
}

func TestSubmitPersistsThenNotifies(t *testing.T) {
	inquiries, cars, mailer := inquiryFixture(t)
	uc := NewInquiryUsecase(inquiries, cars, mailer, "noreply@example.com", "manager@example.com")

	created, err := uc.Submit(context.Background(), validInquiry())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created inquiry must have an id")
	}
	if len(inquiries.created) != 1 {
		t.Fatalf("persisted = %d", len(inquiries.created))
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %d", len(mailer.sent))
	}
	m := mailer.sent[0]
	if m.to != "manager@example.com" {
		t.Fatalf("to = %q", m.to)
	}
	if !strings.Contains(m.subject, "Jane Doe") {
		t.Fatalf("subject = %q", m.subject)
	}
	if !strings.Contains(m.body, "Toyota Camry (2015)") {
		t.Fatalf("body missing car details:\n%s", m.body)
	}
}

func TestSubmitNotifyFailureStillSucceeds(t *testing.T) {
	inquiries, cars, mailer := inquiryFixture(t)
	mailer.sendErr = errors.New("sendgrid down")
	uc := NewInquiryUsecase(inquiries, cars, mailer, "noreply@example.com", "manager@example.com")

	if _, err := uc.Submit(context.Background(), validInquiry()); err != nil {
		t.Fatalf("notification failure must not fail the submission: %v", err)
	}
	if len(inquiries.created) != 1 {
		t.Fatal("inquiry must still be persisted")
	}
}

func TestSubmitStoreFailureFails(t *testing.T) {
	inquiries, cars, mailer := inquiryFixture(t)
	inquiries.createErr = errStoreDown
	uc := NewInquiryUsecase(inquiries, cars, mailer, "noreply@example.com", "manager@example.com")

	if _, err := uc.Submit(context.Background(), validInquiry()); !errors.Is(err, errStoreDown) {
		t.Fatalf("got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatal("no notification may be sent when persistence fails")
	}
}

func TestSubmitGeneralInquiry(t *testing.T) {
	inquiries, cars, mailer := inquiryFixture(t)
	uc := NewInquiryUsecase(inquiries, cars, mailer, "noreply@example.com", "manager@example.com")

	in := validInquiry()
	in.CarID = ""
	in.InquiryType = inqdom.TypeGeneral

	created, err := uc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !created.General() {
		t.Fatal("empty car id must produce a general inquiry")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %d", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[0].body, "General inquiry") {
		t.Fatalf("body missing general fallback:\n%s", mailer.sent[0].body)
	}
}

func TestSubmitInvalidInput(t *testing.T) {
	inquiries, cars, mailer := inquiryFixture(t)
	uc := NewInquiryUsecase(inquiries, cars, mailer, "noreply@example.com", "manager@example.com")

	in := validInquiry()
	in.CustomerEmail = "not-an-email"

	if _, err := uc.Submit(context.Background(), in); !errors.Is(err, inqdom.ErrInvalidEmail) {
		t.Fatalf("got %v", err)
	}
	if len(inquiries.created) != 0 || len(mailer.sent) != 0 {
		t.Fatal("invalid input must neither persist nor notify")
	}
}

func TestSubmitWithoutMailer(t *testing.T) {
	inquiries, cars, _ := inquiryFixture(t)
	uc := NewInquiryUsecase(inquiries, cars, nil, "", "")

	if _, err := uc.Submit(context.Background(), validInquiry()); err != nil {
		t.Fatalf("Submit without mailer: %v", err)
	}
	if len(inquiries.created) != 1 {
		t.Fatal("inquiry must be persisted without a mailer")
	}
}
