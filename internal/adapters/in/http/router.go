package httpin

import (
	"net/http"

	"manchy/internal/adapters/in/http/handlers"
	"manchy/internal/adapters/out/paystack"
	usecase "manchy/internal/application/usecase"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	CatalogUC     *usecase.CatalogUsecase
	StaffUC       *usecase.StaffUsecase
	InquiryUC     *usecase.InquiryUsecase
	CheckoutUC    *usecase.CheckoutUsecase
	TransactionUC *usecase.TransactionUsecase

	// PaymentHandler talks to the gateway client directly for the
	// pass-through initialize contract.
	Paystack *paystack.Client

	// NotifyHandler dependencies.
	Mailer       usecase.EmailClient
	FromEmail    string
	ManagerEmail string

	// WhatsApp contact number rendered into detail-page deep links.
	WhatsAppNumber string
}

// NewRouter sets up HTTP routing for all storefront endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.CatalogUC != nil {
		mux.Handle("/cars/", handlers.NewCarHandler(deps.CatalogUC, deps.WhatsAppNumber))
	}

	if deps.StaffUC != nil {
		mux.Handle("/staff/", handlers.NewStaffHandler(deps.StaffUC))
	}

	if deps.InquiryUC != nil {
		mux.Handle("/inquiries/", handlers.NewInquiryHandler(deps.InquiryUC))
	}

	if deps.CheckoutUC != nil && deps.Paystack != nil {
		mux.Handle("/payments/", handlers.NewPaymentHandler(deps.CheckoutUC, deps.Paystack))
	}

	if deps.TransactionUC != nil {
		mux.Handle("/transactions/", handlers.NewTransactionHandler(deps.TransactionUC))
	}

	// Receipt is acknowledged even without a mailer wired; the handler
	// degrades to logging only.
	mux.Handle("/send-inquiry-email", handlers.NewNotifyHandler(deps.Mailer, deps.FromEmail, deps.ManagerEmail))

	return mux
}
