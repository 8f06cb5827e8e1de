package models

import "time"

// ActionType identifies a quota-limited user action.
type ActionType string

const (
	// ActionRequestMatch covers sending a like to another pet.
	ActionRequestMatch ActionType = "request_match"
)

// DailyUsage tracks how many times a user performed an action on a calendar
// day. The (user, action, day) key is unique; a new day simply produces a new
// key, so counters reset without any scheduled job. Increments go through a
// single upsert so concurrent first actions collapse into one row.
type DailyUsage struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_daily_usage_key" json:"user_id"`
	ActionType ActionType `gorm:"type:varchar(40);not null;uniqueIndex:idx_daily_usage_key" json:"action_type"`
	ActionDate string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_usage_key" json:"action_date"`
	Count      int        `gorm:"not null;default:0" json:"count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (DailyUsage) TableName() string {
	return "daily_usages"
}

// UsageDateFormat is the calendar-day key layout for DailyUsage.ActionDate.
const UsageDateFormat = "2006-01-02"

// UsageDate formats t as a DailyUsage day key in server-local time.
func UsageDate(t time.Time) string {
	return t.Format(UsageDateFormat)
}
