package models

import (
	"time"

	"gorm.io/gorm"
)

// MatchStatus represents the lifecycle state of a like edge.
type MatchStatus string

const (
	// MatchStatusPending indicates a like that has not been reciprocated yet.
	MatchStatusPending MatchStatus = "pending"
	// MatchStatusAccepted indicates a confirmed match (both sides liked).
	MatchStatusAccepted MatchStatus = "accepted"
)

// Match represents a directed like edge from one pet to another.
//
// Lifecycle: pending -> accepted (reciprocal like or explicit match) or
// pending/accepted -> soft-deleted (pass/unmatch). Rows are never hard
// deleted; audit history survives in deleted_at. At most one live edge may
// exist per ordered (FromPetID, ToPetID) pair — a partial unique index
// created in database.Connect enforces this under concurrent double-submits.
type Match struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	FromUserID uint           `gorm:"not null;index:idx_matches_from_user" json:"from_user_id"`
	FromPetID  uint           `gorm:"not null;index:idx_matches_pair" json:"from_pet_id"`
	ToUserID   uint           `gorm:"not null;index:idx_matches_to_user" json:"to_user_id"`
	ToPetID    uint           `gorm:"not null;index:idx_matches_pair" json:"to_pet_id"`
	Status     MatchStatus    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	FromUser User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	FromPet  Pet  `gorm:"foreignKey:FromPetID" json:"from_pet,omitempty"`
	ToUser   User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
	ToPet    Pet  `gorm:"foreignKey:ToPetID" json:"to_pet,omitempty"`
}

// TableName specifies the table name for GORM
func (Match) TableName() string {
	return "matches"
}
