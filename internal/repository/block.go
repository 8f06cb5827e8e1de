package repository

import (
	"context"
	"errors"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// BlockRepository defines the interface for block-edge data operations.
// Blocks are append-only; removal belongs to an external admin flow.
type BlockRepository interface {
	Create(ctx context.Context, block *models.Block) error
	IsBlocked(ctx context.Context, userA, userB uint) (bool, error)
	ListBlockedUserIDs(ctx context.Context, userID uint) ([]uint, error)
}

// blockRepository implements BlockRepository
type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(ctx context.Context, block *models.Block) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("User is already blocked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// IsBlocked checks both directions: either one of the pair blocking the
// other suppresses all social surfaces between them.
func (r *blockRepository) IsBlocked(ctx context.Context, userA, userB uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListBlockedUserIDs returns every user involved in a block with userID,
// regardless of who initiated it.
func (r *blockRepository) ListBlockedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Find(&blocks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	seen := make(map[uint]struct{}, len(blocks))
	var ids []uint
	for _, b := range blocks {
		other := b.FromUserID
		if other == userID {
			other = b.ToUserID
		}
		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			ids = append(ids, other)
		}
	}
	return ids, nil
}
