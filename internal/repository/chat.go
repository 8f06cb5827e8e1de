package repository

import (
	"context"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// ChatActivityRepository reads unread-message activity for match
// conversations. The chat product owns the messages table; the engine only
// consumes it when computing badge counts.
type ChatActivityRepository interface {
	UnreadMatches(ctx context.Context, matchIDs []uint, ownPetIDs []uint) ([]uint, error)
}

// chatActivityRepository implements ChatActivityRepository
type chatActivityRepository struct {
	db *gorm.DB
}

// NewChatActivityRepository creates a new chat activity repository
func NewChatActivityRepository(db *gorm.DB) ChatActivityRepository {
	return &chatActivityRepository{db: db}
}

// UnreadMatches returns the subset of matchIDs that have unread messages not
// sent by the viewer's own pets.
func (r *chatActivityRepository) UnreadMatches(ctx context.Context, matchIDs []uint, ownPetIDs []uint) ([]uint, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}

	q := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("match_id IN ? AND is_read = ?", matchIDs, false)
	if len(ownPetIDs) > 0 {
		q = q.Where("sender_pet_id NOT IN ?", ownPetIDs)
	}

	var ids []uint
	if err := q.Distinct().Pluck("match_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
