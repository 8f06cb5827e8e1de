package service

import (
	"context"

	"pawnder/internal/models"
	"pawnder/internal/repository"
)

// BlockService records user blocks. Blocks are append-only; once present in
// either direction the pair disappears from each other's social surfaces.
type BlockService struct {
	blockRepo repository.BlockRepository
	userRepo  repository.UserRepository
}

// NewBlockService returns a new BlockService.
func NewBlockService(blockRepo repository.BlockRepository, userRepo repository.UserRepository) *BlockService {
	return &BlockService{
		blockRepo: blockRepo,
		userRepo:  userRepo,
	}
}

// BlockUser records a block from userID against targetUserID.
func (s *BlockService) BlockUser(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewValidationError("You cannot block yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return err
	}

	return s.blockRepo.Create(ctx, &models.Block{
		FromUserID: userID,
		ToUserID:   targetUserID,
	})
}
