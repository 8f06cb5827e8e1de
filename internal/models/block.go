package models

import "time"

// Block represents a directed suppression edge between two users. The
// presence of either direction hides all social surfaces between the pair.
// Blocks are append-only; removal is an admin flow outside this service.
type Block struct {
	FromUserID uint      `gorm:"primaryKey;autoIncrement:false" json:"from_user_id"`
	ToUserID   uint      `gorm:"primaryKey;autoIncrement:false" json:"to_user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Block) TableName() string {
	return "blocks"
}
