// Package service contains the match engine's business logic.
package service

import (
	"context"
	"time"

	"pawnder/internal/cache"
	"pawnder/internal/middleware"
	"pawnder/internal/models"
	"pawnder/internal/repository"

	"github.com/redis/go-redis/v9"
)

// SubscriptionSource answers whether a user currently holds a VIP plan.
// The engine never writes subscription state; purchases and renewals belong
// to the payment system.
type SubscriptionSource interface {
	IsVIP(ctx context.Context, userID uint) (bool, error)
}

// ChatActivitySource reports which match conversations have unread messages
// not sent by the viewer's own pets. The chat product owns the underlying
// data.
type ChatActivitySource interface {
	UnreadMatches(ctx context.Context, matchIDs []uint, ownPetIDs []uint) ([]uint, error)
}

// gormSubscriptionSource reads VIP state straight from the subscriptions
// table.
type gormSubscriptionSource struct {
	repo repository.SubscriptionRepository
}

// NewSubscriptionSource returns a SubscriptionSource backed by the
// subscription repository.
func NewSubscriptionSource(repo repository.SubscriptionRepository) SubscriptionSource {
	return &gormSubscriptionSource{repo: repo}
}

func (s *gormSubscriptionSource) IsVIP(ctx context.Context, userID uint) (bool, error) {
	return s.repo.HasActivePlan(ctx, userID, models.SubscriptionPlanVIP, time.Now())
}

// cachedSubscriptionSource layers a short-TTL Redis cache over another
// source. Cache failures fall through to the inner source so Redis outages
// never block likes.
type cachedSubscriptionSource struct {
	inner  SubscriptionSource
	client *redis.Client
}

// NewCachedSubscriptionSource wraps inner with a Redis cache keyed per user.
// A nil client disables caching.
func NewCachedSubscriptionSource(inner SubscriptionSource, client *redis.Client) SubscriptionSource {
	if client == nil {
		return inner
	}
	return &cachedSubscriptionSource{inner: inner, client: client}
}

func (s *cachedSubscriptionSource) IsVIP(ctx context.Context, userID uint) (bool, error) {
	key := cache.VIPKey(userID)

	cached, err := s.client.Get(ctx, key).Result()
	if err == nil {
		return cached == "1", nil
	}
	if err != redis.Nil {
		middleware.Logger.WarnContext(ctx, "vip cache read failed", "error", err, "user_id", userID)
	}

	vip, err := s.inner.IsVIP(ctx, userID)
	if err != nil {
		return false, err
	}

	val := "0"
	if vip {
		val = "1"
	}
	if err := s.client.Set(ctx, key, val, cache.VIPTTL).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "vip cache write failed", "error", err, "user_id", userID)
	}

	return vip, nil
}
