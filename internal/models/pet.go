package models

import (
	"time"

	"gorm.io/gorm"
)

// Pet represents a pet profile owned by a user. Only the owner's active pet
// appears in discovery candidate pools; at most one live pet per user may be
// active at a time (enforced by PetRepository.SetActive).
type Pet struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Name      string         `gorm:"not null" json:"name"`
	Species   string         `gorm:"type:varchar(40)" json:"species"`
	Breed     string         `json:"breed"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	IsActive  bool           `gorm:"default:false;index" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (Pet) TableName() string {
	return "pets"
}
