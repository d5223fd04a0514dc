package mail

import (
	"fmt"
	"strings"
)

// InquiryNotice is the manager-facing notification built from a customer
// inquiry. CarDetails is optional; a general inquiry falls back to a
// generic label.
type InquiryNotice struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	InquiryType   string
	Message       string
	CarDetails    string
}

// Subject is the notification email subject line.
func (n InquiryNotice) Subject() string {
	return "New Customer Inquiry: " + n.CustomerName
}

// Body renders the plain-text notification. Absent optional fields render
// as explicit placeholders so the manager sees what was not provided.
func (n InquiryNotice) Body() string {
	phone := strings.TrimSpace(n.CustomerPhone)
	if phone == "" {
		phone = "Not provided"
	}
	carDetails := strings.TrimSpace(n.CarDetails)
	if carDetails == "" {
		carDetails = "General inquiry"
	}

	var b strings.Builder
	b.WriteString("New Customer Inquiry\n\n")
	fmt.Fprintf(&b, "Customer Name: %s\n", n.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", n.CustomerEmail)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Inquiry Type: %s\n", n.InquiryType)
	fmt.Fprintf(&b, "Car: %s\n", carDetails)
	fmt.Fprintf(&b, "\nMessage:\n%s\n", n.Message)
	return b.String()
}
