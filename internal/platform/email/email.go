package email

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Sender abstracts outbound mail delivery down to a single call:
// recipient, subject, body in; ok or err out. No ordering or
// delivery-guarantee assumption beyond per-call success/failure. The
// Notification Dispatcher is the only caller.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) (bool, error)
}

// ResendSender sends mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a Sender backed by the Resend API.
func NewResendSender(apiKey, fromAddress string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   fromAddress,
	}
}

// Send dispatches a single email. It returns (true, nil) when Resend
// accepts the request; any failure, transport-level or a rejection
// reported by the Resend client, is returned as (false, err).
func (s *ResendSender) Send(ctx context.Context, recipient, subject, body string) (bool, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{recipient},
		Subject: subject,
		Html:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return false, err
	}
	return true, nil
}
