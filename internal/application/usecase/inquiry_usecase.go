package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"manchy/internal/adapters/out/mail"
	cardom "manchy/internal/domain/car"
	inqdom "manchy/internal/domain/inquiry"
)

// EmailClient is the outbound mail contract.
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// SubmitInquiryInput is one customer submission. CarID empty means a
// general inquiry.
type SubmitInquiryInput struct {
	CarID         string             `json:"car_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	InquiryType   inqdom.InquiryType `json:"inquiry_type"`
	Message       string             `json:"message"`
}

// InquiryUsecase persists customer inquiries and sends a best-effort
// manager notification afterwards.
type InquiryUsecase struct {
	inquiries inqdom.Repository
	cars      cardom.Repository

	// mailer may be nil; notification is then skipped entirely.
	mailer       EmailClient
	fromEmail    string
	managerEmail string
}

// NewInquiryUsecase initializes the usecase. cars is only consulted to
// enrich the notification with vehicle details and may be nil.
func NewInquiryUsecase(
	inquiries inqdom.Repository,
	cars cardom.Repository,
	mailer EmailClient,
	fromEmail, managerEmail string,
) *InquiryUsecase {
	return &InquiryUsecase{
		inquiries:    inquiries,
		cars:         cars,
		mailer:       mailer,
		fromEmail:    fromEmail,
		managerEmail: managerEmail,
	}
}

// Submit persists the inquiry, then notifies the manager. Persistence is
// the success contract; a notification failure is logged and swallowed so
// the customer-facing outcome only reflects the store write.
func (uc *InquiryUsecase) Submit(ctx context.Context, in SubmitInquiryInput) (inqdom.Inquiry, error) {
	var carID *string
	if in.CarID != "" {
		carID = &in.CarID
	}

	entity, err := inqdom.New(
		"", carID,
		in.CustomerName, in.CustomerEmail, in.CustomerPhone,
		in.InquiryType,
		in.Message,
		time.Now().UTC(),
	)
	if err != nil {
		return inqdom.Inquiry{}, err
	}

	created, err := uc.inquiries.Create(ctx, entity)
	if err != nil {
		return inqdom.Inquiry{}, err
	}

	uc.notify(ctx, created)
	return created, nil
}

// GetByID returns one inquiry or inquiry.ErrNotFound.
func (uc *InquiryUsecase) GetByID(ctx context.Context, id string) (inqdom.Inquiry, error) {
	return uc.inquiries.GetByID(ctx, id)
}

// notify builds and sends the manager notification. All failures end here.
func (uc *InquiryUsecase) notify(ctx context.Context, in inqdom.Inquiry) {
	if uc.mailer == nil || uc.managerEmail == "" {
		return
	}

	notice := mail.InquiryNotice{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		InquiryType:   string(in.InquiryType),
		Message:       in.Message,
	}

	if in.CarID != nil && uc.cars != nil {
		if c, err := uc.cars.GetByID(ctx, *in.CarID); err == nil {
			notice.CarDetails = fmt.Sprintf("%s (%d)", c.DisplayName(), c.Year)
		}
	}

	if err := uc.mailer.Send(ctx, uc.fromEmail, uc.managerEmail, notice.Subject(), notice.Body()); err != nil {
		log.Printf("[inquiry] notification failed id=%s err=%v", in.ID, err)
	}
}
