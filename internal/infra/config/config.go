package config

import "os"

// Config holds the environment configuration for the whole application.
type Config struct {
	Port                     string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string

	// Paystack gateway. SecretKey may be empty here; the DI layer then
	// falls back to Secret Manager.
	PaystackSecretKey string
	PaystackBaseURL   string
	CheckoutMode      string

	// Mail notification settings.
	SendGridAPIKey string
	MailFrom       string
	ManagerEmail   string

	// Storefront contact and media settings.
	WhatsAppNumber string
	CarsBucket     string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "manchy-automobile")

	return &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL:   os.Getenv("PAYSTACK_BASE_URL"),
		CheckoutMode:      os.Getenv("CHECKOUT_MODE"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getenvDefault("MAIL_FROM", "noreply@manchyautomobile.com"),
		ManagerEmail:   getenvDefault("MANAGER_EMAIL", "manchyautomobile@gmail.com"),

		WhatsAppNumber: getenvDefault("WHATSAPP_NUMBER", "2347076470444"),
		CarsBucket:     os.Getenv("CARS_BUCKET"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
