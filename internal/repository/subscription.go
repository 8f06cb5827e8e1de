package repository

import (
	"context"
	"time"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository reads subscription state owned by the payment
// system. The engine only asks one question: is this user VIP right now.
type SubscriptionRepository interface {
	HasActivePlan(ctx context.Context, userID uint, plan models.SubscriptionPlan, now time.Time) (bool, error)
}

// subscriptionRepository implements SubscriptionRepository
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) HasActivePlan(ctx context.Context, userID uint, plan models.SubscriptionPlan, now time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ? AND plan = ? AND expires_at > ?", userID, plan, now).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
