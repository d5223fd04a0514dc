package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"manchy/internal/adapters/out/mail"
	usecase "manchy/internal/application/usecase"
)

// NotifyHandler serves POST /send-inquiry-email, the standalone notification
// endpoint the storefront's contact form posts to. Receipt is acknowledged
// once the body parses and the required fields are present; the mail send
// itself is best-effort.
type NotifyHandler struct {
	mailer       usecase.EmailClient
	fromEmail    string
	managerEmail string
}

func NewNotifyHandler(mailer usecase.EmailClient, fromEmail, managerEmail string) http.Handler {
	return &NotifyHandler{mailer: mailer, fromEmail: fromEmail, managerEmail: managerEmail}
}

type notifyRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	InquiryType   string `json:"inquiryType"`
	Message       string `json:"message"`
	CarDetails    string `json:"carDetails"`
}

func (h *NotifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost || r.URL.Path != "/send-inquiry-email" {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}

	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Failed to process inquiry",
			"details": err.Error(),
		})
		return
	}

	notice := mail.InquiryNotice{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		InquiryType:   strings.TrimSpace(req.InquiryType),
		Message:       strings.TrimSpace(req.Message),
		CarDetails:    strings.TrimSpace(req.CarDetails),
	}

	if missing := missingNotifyField(notice); missing != "" {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Failed to process inquiry",
			"details": missing + " is required",
		})
		return
	}

	log.Printf("[notify] inquiry received name=%s type=%s", notice.CustomerName, notice.InquiryType)

	if h.mailer != nil && h.managerEmail != "" {
		if err := h.mailer.Send(r.Context(), h.fromEmail, h.managerEmail, notice.Subject(), notice.Body()); err != nil {
			log.Printf("[notify] email send failed err=%v", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Thank you! Your inquiry has been received and saved. Our team will contact you soon.",
	})
}

// missingNotifyField returns the name of the first absent required field,
// or "" when the submission is complete. Phone and car details stay optional.
func missingNotifyField(n mail.InquiryNotice) string {
	switch {
	case n.CustomerName == "":
		return "customerName"
	case n.CustomerEmail == "":
		return "customerEmail"
	case n.InquiryType == "":
		return "inquiryType"
	case n.Message == "":
		return "message"
	}
	return ""
}
