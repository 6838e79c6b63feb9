package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

// ResendMailer implements Mailer on the Resend API
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a new Resend-backed Mailer using the provided API key
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	logrus.WithFields(logrus.Fields{
		"component": "mailer",
		"email_id":  sent.Id,
		"to":        msg.To,
	}).Debug("email accepted by provider")
	return nil
}
