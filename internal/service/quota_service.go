package service

import (
	"context"
	"time"

	"pawnder/internal/featureflags"
	"pawnder/internal/middleware"
	"pawnder/internal/models"
	"pawnder/internal/observability"
	"pawnder/internal/repository"
)

// QuotaService enforces daily per-action limits. VIP users are exempt.
type QuotaService struct {
	quotaRepo repository.QuotaRepository
	subs      SubscriptionSource
	flags     *featureflags.Manager
	limit     int
	now       func() time.Time
}

// NewQuotaService returns a new QuotaService enforcing limit actions per
// user per calendar day. flags may be nil.
func NewQuotaService(quotaRepo repository.QuotaRepository, subs SubscriptionSource, flags *featureflags.Manager, limit int) *QuotaService {
	return &QuotaService{
		quotaRepo: quotaRepo,
		subs:      subs,
		flags:     flags,
		limit:     limit,
		now:       time.Now,
	}
}

// Consume records one unit of the action and fails with a quota error once
// the day's limit is exhausted. Check and increment are a single upsert, so
// concurrent requests can never sneak past the limit; a consumed unit is not
// refunded if the action later fails for other reasons.
func (s *QuotaService) Consume(ctx context.Context, userID uint, action models.ActionType) error {
	vip, err := s.subs.IsVIP(ctx, userID)
	if err != nil {
		// Degrade to non-VIP rather than blocking the action outright.
		middleware.Logger.WarnContext(ctx, "vip lookup failed, enforcing quota", "error", err, "user_id", userID)
		vip = false
	}
	if vip {
		return nil
	}

	if s.flags.Enabled(featureflags.FlagQuotaBypass, userID) {
		return nil
	}

	count, err := s.quotaRepo.Increment(ctx, userID, action, models.UsageDate(s.now()))
	if err != nil {
		return err
	}
	if count > s.limit {
		observability.QuotaRejectionsTotal.WithLabelValues(string(action)).Inc()
		return models.NewQuotaExceededError("Daily like limit reached. Try again tomorrow or upgrade to VIP")
	}

	return nil
}
