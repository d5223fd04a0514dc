package mail

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "Manchy Automobile"

// SendGridClient delivers inquiry notices through the SendGrid v3 API.
// The notice body is plain text; an escaped <pre> copy is attached so
// mail clients that prefer HTML render it readably.
type SendGridClient struct {
	sg *sendgrid.Client
}

func NewSendGridClient(apiKey string) *SendGridClient {
	return &SendGridClient{sg: sendgrid.NewSendClient(apiKey)}
}

func (c *SendGridClient) Send(ctx context.Context, from, to, subject, body string) error {
	if c == nil || c.sg == nil {
		return fmt.Errorf("sendgrid client is not configured")
	}
	if from == "" || to == "" {
		return fmt.Errorf("mail requires both from and to addresses")
	}

	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(senderName, from),
		subject,
		sgmail.NewEmail("", to),
		body,
		"<pre>"+html.EscapeString(body)+"</pre>",
	)

	res, err := c.sg.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected mail: status=%d body=%s", res.StatusCode, res.Body)
	}

	log.Printf("[mail] notice delivered to=%s status=%d", to, res.StatusCode)
	return nil
}
