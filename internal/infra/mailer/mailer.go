// Package mailer provides concrete implementations of the Mailer domain service.
package mailer

import (
	"log/slog"

	"bloodcare/config"
	"bloodcare/internal/domain/service"

	"github.com/pkg/errors"
)

// Provider names accepted in configuration.
const (
	ProviderSMTP = "smtp"
	ProviderLog  = "log"
)

// New creates a Mailer based on configuration. Without configuration mail is
// written to the log, which keeps development and tests free of an SMTP
// dependency.
func New(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	smtpCfg := cfg.SMTP

	if smtpCfg == nil || smtpCfg.Provider == "" || smtpCfg.Provider == ProviderLog {
		logger.Info("SMTP not configured, using log mailer")

		return &logMailer{logger: logger}, nil
	}

	switch smtpCfg.Provider {
	case ProviderSMTP:
		if smtpCfg.Host == "" || smtpCfg.From == "" {
			return nil, errors.New("smtp host and from address are required for smtp provider")
		}

		return newSMTPMailer(smtpCfg), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", smtpCfg.Provider)
	}
}
