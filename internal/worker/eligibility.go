// Package worker hosts background deliveries that run on a schedule.
package worker

import (
	"context"
	"log/slog"
	"time"

	"bloodcare/config"
	"bloodcare/internal/delivery"
	"bloodcare/internal/domain/repository"
)

const (
	defaultSweepInterval = 24 * time.Hour
	defaultCooldownDays  = 90
)

// EligibilityWorker periodically marks donors eligible again once their
// post-donation cooldown has elapsed.
type EligibilityWorker struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
	interval time.Duration
	cooldown time.Duration
}

// NewEligibilityWorker creates the sweep worker. Missing config sections fall
// back to a daily sweep with a 90 day cooldown.
func NewEligibilityWorker(userRepo repository.UserRepository, logger *slog.Logger, cfg *config.Config) delivery.Delivery {
	interval := defaultSweepInterval
	cooldownDays := defaultCooldownDays
	if cfg.Eligibility != nil {
		if cfg.Eligibility.Interval > 0 {
			interval = cfg.Eligibility.Interval
		}
		if cfg.Eligibility.CooldownDays > 0 {
			cooldownDays = cfg.Eligibility.CooldownDays
		}
	}

	return &EligibilityWorker{
		userRepo: userRepo,
		logger:   logger,
		interval: interval,
		cooldown: time.Duration(cooldownDays) * 24 * time.Hour,
	}
}

// Serve runs one sweep immediately, then one per interval until the context
// is cancelled.
func (w *EligibilityWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting eligibility sweep worker",
		slog.Duration("interval", w.interval),
		slog.Duration("cooldown", w.cooldown),
	)

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *EligibilityWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.cooldown)

	restored, err := w.userRepo.ResetEligibility(ctx, cutoff)
	if err != nil {
		w.logger.Error("eligibility sweep failed", slog.Any("error", err))

		return
	}

	if restored > 0 {
		w.logger.Info("eligibility sweep restored donors",
			slog.Int64("restored", restored),
			slog.Time("cutoff", cutoff),
		)
	}
}
