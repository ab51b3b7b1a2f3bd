package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"bloodcare/config"
	"bloodcare/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends mail through a plain SMTP server.
type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func newSMTPMailer(cfg *config.SMTPConfig) service.Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

// Send delivers a plain-text message to a single recipient. The context is
// honored up front; net/smtp offers no per-dial cancellation.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send mail")
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "send mail")
	}

	return nil
}
