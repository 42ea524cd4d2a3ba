// utils/email.go
package utils

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. With an empty
// API key the service is disabled and every send is a logged no-op, so
// local environments work without credentials.
type EmailService struct {
	client *sendgrid.Client
	sender string
	log    zerolog.Logger
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService(apiKey, sender string, log zerolog.Logger) *EmailService {
	es := &EmailService{sender: sender, log: log}
	if apiKey == "" {
		log.Info().Msg("SendGrid API key not set, email sending disabled")
		return es
	}
	es.client = sendgrid.NewSendClient(apiKey)
	return es
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if es.client == nil {
		es.log.Debug().Str("to", toEmail).Str("subject", subject).Msg("email disabled, skipping send")
		return nil
	}

	from := mail.NewEmail("Grocery Store", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmation sends an order confirmation email to the user.
func (es *EmailService) SendOrderConfirmation(toEmail, name, orderNumber string, totalAmount float64) error {
	subject := "Order Confirmation - Grocery Store"
	content := fmt.Sprintf(
		"Dear %s,\n\nThank you for your purchase! Your order %s has been confirmed.\n\nTotal Amount: $%.2f\n\nThank you for shopping with us!\n",
		name, orderNumber, totalAmount,
	)
	return es.SendEmail(toEmail, subject, content)
}
