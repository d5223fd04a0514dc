package car

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link with a pre-filled message. This is a
// user-facing link for manual follow-up, not an API call.
func WhatsAppLink(number, text string) string {
	number = strings.TrimLeft(strings.TrimSpace(number), "+")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

// InterestMessage is the pre-filled text for the "Contact Us" link on a
// vehicle detail page.
func InterestMessage(c Car) string {
	return fmt.Sprintf(
		"Hello, I'm interested in the %s (%d) listed for %s. Can you provide more information?",
		c.DisplayName(), c.Year, FormatPrice(c.Price),
	)
}

// PaymentConfirmationMessage is the pre-filled text sent after a successful
// payment, carrying the gateway reference.
func PaymentConfirmationMessage(c Car, reference string) string {
	return fmt.Sprintf("Payment completed for %s. Reference: %s", c.DisplayName(), reference)
}
