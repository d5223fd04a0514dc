package di

import (
	"context"
	"fmt"
	"log"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	httpin "manchy/internal/adapters/in/http"
	fsrepo "manchy/internal/adapters/out/firestore"
	"manchy/internal/adapters/out/gcs"
	"manchy/internal/adapters/out/mail"
	"manchy/internal/adapters/out/paystack"
	usecase "manchy/internal/application/usecase"
	appcfg "manchy/internal/infra/config"
	firestoreinfra "manchy/internal/infra/firestore"
)

// Container owns the external clients and the wired usecases. Its purpose
// is to keep main.go thin: main builds one Container, asks it for
// RouterDeps, and Closes it on shutdown.
type Container struct {
	Config *appcfg.Config

	// Clients (owned; Close-managed)
	Firestore     *firestoreinfra.ClientWrapper
	GCS           *storage.Client
	SecretManager *secretmanager.Client
	Paystack      *paystack.Client

	// Usecases
	CatalogUC     *usecase.CatalogUsecase
	StaffUC       *usecase.StaffUsecase
	InquiryUC     *usecase.InquiryUsecase
	CheckoutUC    *usecase.CheckoutUsecase
	TransactionUC *usecase.TransactionUsecase

	// Mailer is nil when SENDGRID_API_KEY is empty.
	Mailer usecase.EmailClient
}

// NewContainer initializes the clients and wires repositories, usecases and
// outbound adapters. Firestore is strict; GCS, Secret Manager and SendGrid
// are best-effort (warn and continue with the feature disabled).
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()

	c := &Container{Config: cfg}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
	}

	// 1) Firestore (strict)
	fs, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, credFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore init failed (project=%s): %w", cfg.FirestoreProjectID, err)
	}
	c.Firestore = fs

	// 2) GCS (best-effort; photo upload is disabled without it)
	{
		var gcsClient *storage.Client
		var err error
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di] WARN: storage.NewClient failed: %v (photo upload disabled)", err)
		} else {
			c.GCS = gcsClient
		}
	}

	// 3) Secret Manager (best-effort; only needed for the Paystack fallback)
	{
		var sm *secretmanager.Client
		var err error
		if len(clientOpts) > 0 {
			sm, err = secretmanager.NewClient(ctx, clientOpts...)
		} else {
			sm, err = secretmanager.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di] WARN: secretmanager.NewClient failed: %v", err)
			sm = nil
		}
		c.SecretManager = sm
	}

	// 4) Paystack secret: env first, Secret Manager fallback. An empty key
	// leaves the client unconfigured; /payments/initialize then refuses
	// without reaching the gateway.
	paystackSecret := strings.TrimSpace(cfg.PaystackSecretKey)
	if paystackSecret == "" && c.SecretManager != nil {
		if s, err := resolvePaystackSecret(ctx, c.SecretManager, cfg.FirestoreProjectID); err != nil {
			log.Printf("[di] WARN: paystack secret fallback failed: %v", err)
		} else {
			paystackSecret = s
		}
	}
	c.Paystack = paystack.NewClient(cfg.PaystackBaseURL, paystackSecret)
	if !c.Paystack.Configured() {
		log.Printf("[di] WARN: paystack secret key not configured (payments disabled)")
	}

	// 5) SendGrid (best-effort; inquiry notification is skipped without it)
	if strings.TrimSpace(cfg.SendGridAPIKey) != "" {
		c.Mailer = mail.NewSendGridClient(cfg.SendGridAPIKey)
	} else {
		log.Printf("[di] WARN: SENDGRID_API_KEY empty (inquiry notification disabled)")
	}

	// 6) Repositories
	carRepo := fsrepo.NewCarRepositoryFS(fs.Client)
	staffRepo := fsrepo.NewStaffRepositoryFS(fs.Client)
	inquiryRepo := fsrepo.NewInquiryRepositoryFS(fs.Client)
	txRepo := fsrepo.NewTransactionRepositoryFS(fs.Client)

	var photos usecase.PhotoStore
	if c.GCS != nil && strings.TrimSpace(cfg.CarsBucket) != "" {
		photos = gcs.NewCarPhotoRepositoryGCS(c.GCS, cfg.CarsBucket)
	}

	// 7) Usecases
	c.CatalogUC = usecase.NewCatalogUsecase(carRepo, photos)
	c.StaffUC = usecase.NewStaffUsecase(staffRepo)
	c.InquiryUC = usecase.NewInquiryUsecase(inquiryRepo, carRepo, c.Mailer, cfg.MailFrom, cfg.ManagerEmail)
	c.TransactionUC = usecase.NewTransactionUsecase(txRepo)

	c.CheckoutUC = usecase.NewCheckoutUsecase(
		carRepo,
		txRepo,
		paystack.NewGateway(c.Paystack),
		usecase.ParseCheckoutMode(cfg.CheckoutMode),
	)
	c.CheckoutUC.WhatsAppNumber = cfg.WhatsAppNumber

	return c, nil
}

// RouterDeps bundles the wired dependencies for the HTTP router.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CatalogUC:     c.CatalogUC,
		StaffUC:       c.StaffUC,
		InquiryUC:     c.InquiryUC,
		CheckoutUC:    c.CheckoutUC,
		TransactionUC: c.TransactionUC,

		Paystack:       c.Paystack,
		Mailer:         c.Mailer,
		FromEmail:      c.Config.MailFrom,
		ManagerEmail:   c.Config.ManagerEmail,
		WhatsAppNumber: c.Config.WhatsAppNumber,
	}
}

// Close releases the owned clients. Safe to call on a partially built
// container.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.SecretManager != nil {
		_ = c.SecretManager.Close()
	}
}
