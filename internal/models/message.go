package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a chat message inside a match conversation. The engine never
// writes messages; it only reads unread activity through the
// ChatActivitySource collaborator when computing badge counts.
type Message struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MatchID     uint           `gorm:"not null;index" json:"match_id"`
	SenderPetID uint           `gorm:"not null;index" json:"sender_pet_id"`
	Content     string         `gorm:"type:text" json:"content"`
	IsRead      bool           `gorm:"default:false;index" json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
