package service

import "context"

// Mailer defines the interface for sending transactional email, used to
// deliver one-time passwords.
type Mailer interface {
	// Send delivers a plain-text message to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}
