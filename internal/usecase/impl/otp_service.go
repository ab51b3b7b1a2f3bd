// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"bloodcare/config"
	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/domain/service"
	"bloodcare/internal/errors"
	"bloodcare/internal/usecase"
)

const (
	defaultRequestOtpTTL = 10 * time.Minute
	defaultVerifyOtpTTL  = 5 * time.Minute
)

var otpCodeSpace = big.NewInt(1000000)

type otpService struct {
	otpRepo repository.OtpRepository
	mailer  service.Mailer
	logger  *slog.Logger
	config  *config.Config
}

// NewOtpService creates a new OTP service instance
func NewOtpService(otpRepo repository.OtpRepository, mailer service.Mailer, logger *slog.Logger, cfg *config.Config) usecase.OtpUsecase {
	// If Otp is not configured, provide a default configuration
	if cfg.Otp == nil {
		cfg.Otp = &config.OtpConfig{
			RequestTTL: defaultRequestOtpTTL,
			VerifyTTL:  defaultVerifyOtpTTL,
		}
	}

	return &otpService{
		otpRepo: otpRepo,
		mailer:  mailer,
		logger:  logger,
		config:  cfg,
	}
}

// Issue generates a fresh six-digit code for the (email, purpose) pair,
// stores it and mails it. The upsert makes reissued codes latest-wins.
func (s *otpService) Issue(ctx context.Context, email string, purpose entity.OtpPurpose) error {
	code, err := generateOtpCode()
	if err != nil {
		return errors.Wrap(err, "generate otp code")
	}

	now := time.Now()
	challenge := &entity.OtpChallenge{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: now.Add(s.ttlFor(purpose)),
		CreatedAt: now,
	}

	if err := s.otpRepo.Upsert(ctx, challenge); err != nil {
		return errors.Wrap(err, "store otp challenge")
	}

	subject, body := otpMail(purpose, code)
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		s.logger.Error("otp mail delivery failed",
			slog.String("email", email),
			slog.String("purpose", purpose.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrOtpDeliveryFailed
	}

	return nil
}

// Verify checks a submitted code. Failure order is fixed: missing challenge,
// then expiry, then mismatch. Only a successful match consumes the code.
func (s *otpService) Verify(ctx context.Context, email string, purpose entity.OtpPurpose, code string) error {
	challenge, err := s.otpRepo.FindByEmailAndPurpose(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, repository.ErrOtpNotFound) {
			return domainerrors.ErrOtpNotFound
		}

		return errors.Wrap(err, "load otp challenge")
	}

	if challenge.Expired(time.Now()) {
		return domainerrors.ErrOtpExpired
	}

	if challenge.Code != code {
		return domainerrors.ErrOtpMismatch
	}

	// Single use. A delete failure here would let the code verify twice,
	// so it is treated as a verification failure.
	if err := s.otpRepo.DeleteByEmailAndPurpose(ctx, email, purpose); err != nil {
		return errors.Wrap(err, "consume otp challenge")
	}

	return nil
}

func (s *otpService) ttlFor(purpose entity.OtpPurpose) time.Duration {
	switch purpose {
	case entity.OtpPurposeEmailVerify:
		if s.config.Otp.VerifyTTL > 0 {
			return s.config.Otp.VerifyTTL
		}

		return defaultVerifyOtpTTL
	default:
		if s.config.Otp.RequestTTL > 0 {
			return s.config.Otp.RequestTTL
		}

		return defaultRequestOtpTTL
	}
}

// generateOtpCode draws a uniform six-digit code from crypto/rand,
// zero padded so "004217" stays six characters.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func otpMail(purpose entity.OtpPurpose, code string) (subject, body string) {
	switch purpose {
	case entity.OtpPurposeBloodRequest:
		subject = "Your blood request verification code"
	case entity.OtpPurposeAdminApproval:
		subject = "Your hospital approval verification code"
	case entity.OtpPurposeEmailVerify:
		subject = "Verify your email address"
	default:
		subject = "Your verification code"
	}

	body = fmt.Sprintf("Your verification code is %s. It expires shortly, do not share it with anyone.", code)

	return subject, body
}
