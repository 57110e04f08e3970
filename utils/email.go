// utils/email.go
package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"go-redstore/models"
)

// EmailService sends transactional mail through SendGrid. Without an API key
// it degrades to a no-op so local runs never need credentials.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiKey, sender string) *EmailService {
	es := &EmailService{sender: sender}
	if apiKey != "" {
		es.client = sendgrid.NewSendClient(apiKey)
	}
	return es
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if es.client == nil {
		logrus.WithField("to", toEmail).Debug("email delivery disabled, skipping send")
		return nil
	}
	from := mail.NewEmail("RedStore", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)
	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmation mails the order receipt after checkout commits.
func (es *EmailService) SendOrderConfirmation(toEmail string, order models.Order) error {
	subject := "Order Confirmation - RedStore"
	content := fmt.Sprintf(
		"Dear Customer,\n\nThank you for your purchase! Your order (ID: %s) has been placed successfully.\n\nTotal Amount: ₹%.2f\nPayment Method: %s\nPlaced on: %s\n\nThank you for shopping with us!\n",
		order.ID, order.Total, order.PaymentMethod, order.Date,
	)
	return es.SendEmail(toEmail, subject, content)
}
