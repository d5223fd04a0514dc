package mail

import (
	"strings"
	"testing"
)

func TestNoticeSubject(t *testing.T) {
	n := InquiryNotice{CustomerName: "Jane Doe"}
	if got := n.Subject(); got != "New Customer Inquiry: Jane Doe" {
		t.Fatalf("Subject = %q", got)
	}
}

func TestNoticeBody(t *testing.T) {
	n := InquiryNotice{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "08012345678",
		InquiryType:   "test-drive",
		Message:       "When can I come in?",
		CarDetails:    "Toyota Camry (2015)",
	}
	body := n.Body()
	for _, want := range []string{
		"Jane Doe",
		"jane@example.com",
		"08012345678",
		"test-drive",
		"Toyota Camry (2015)",
		"When can I come in?",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestNoticeBodyFallbacks(t *testing.T) {
	n := InquiryNotice{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		InquiryType:   "general",
		Message:       "hi",
	}
	body := n.Body()
	if !strings.Contains(body, "Phone: Not provided") {
		t.Fatalf("missing phone fallback:\n%s", body)
	}
	if !strings.Contains(body, "Car: General inquiry") {
		t.Fatalf("missing car fallback:\n%s", body)
	}
}
