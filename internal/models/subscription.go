package models

import "time"

// SubscriptionPlan names a paid tier.
type SubscriptionPlan string

const (
	// SubscriptionPlanVIP exempts a user from daily action quotas.
	SubscriptionPlanVIP SubscriptionPlan = "vip"
)

// Subscription records a user's paid plan. The engine only reads it through
// the SubscriptionSource collaborator; purchase and renewal flows live in the
// payment system.
type Subscription struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Plan      SubscriptionPlan `gorm:"type:varchar(20);not null" json:"plan"`
	ExpiresAt time.Time        `json:"expires_at"`
	CreatedAt time.Time        `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// Active reports whether the subscription is valid at t.
func (s *Subscription) Active(t time.Time) bool {
	return s.ExpiresAt.After(t)
}
