package repository

import (
	"context"
	"errors"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// blockFilterSQL excludes edges whose sender is in a block relation with the
// receiving user, in either direction. Bind the receiving user's ID twice.
const blockFilterSQL = `NOT EXISTS (
	SELECT 1 FROM blocks b
	WHERE (b.from_user_id = matches.from_user_id AND b.to_user_id = ?)
	   OR (b.from_user_id = ? AND b.to_user_id = matches.from_user_id)
)`

// MatchRepository defines the interface for like-edge data operations.
//
// Mutations that implement state transitions are single conditional
// statements: concurrency correctness comes from the live-pair unique index
// (Create) and from status-guarded UPDATEs checked via rows affected
// (AcceptPending), not from in-process locking.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uint) (*models.Match, error)
	GetLiveEdge(ctx context.Context, fromPetID, toPetID uint) (*models.Match, error)
	AcceptPending(ctx context.Context, matchID uint) (bool, error)
	SoftDelete(ctx context.Context, matchID uint) error
	GetLikesReceived(ctx context.Context, recipientUserID uint, petIDs []uint) ([]models.Match, error)
	CountAcceptedForUser(ctx context.Context, userID uint) (int64, error)
	CountPendingReceived(ctx context.Context, recipientUserID uint, petIDs []uint) (int64, error)
	GetAcceptedForPets(ctx context.Context, petIDs []uint) ([]models.Match, error)
	ListLikedPetIDs(ctx context.Context, userID uint) ([]uint, error)
}

// matchRepository implements MatchRepository
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("You already liked this pet")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).
		Preload("FromPet").
		Preload("ToPet").
		Preload("FromUser").
		Preload("ToUser").
		First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Match", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *matchRepository) GetLiveEdge(ctx context.Context, fromPetID, toPetID uint) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).
		Where("from_pet_id = ? AND to_pet_id = ?", fromPetID, toPetID).
		First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no live edge
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

// AcceptPending flips a pending live edge to accepted. The status guard in
// the WHERE clause makes concurrent double-accepts collapse to one winner;
// the loser sees false.
func (r *matchRepository) AcceptPending(ctx context.Context, matchID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ? AND status = ?", matchID, models.MatchStatusPending).
		Update("status", models.MatchStatusAccepted)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *matchRepository) SoftDelete(ctx context.Context, matchID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Match{}, matchID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) GetLikesReceived(ctx context.Context, recipientUserID uint, petIDs []uint) ([]models.Match, error) {
	if len(petIDs) == 0 {
		return nil, nil
	}

	var matches []models.Match
	if err := r.db.WithContext(ctx).
		Where("to_pet_id IN ?", petIDs).
		Where(blockFilterSQL, recipientUserID, recipientUserID).
		Preload("FromPet").
		Preload("FromUser").
		Order("created_at DESC").
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *matchRepository) CountAcceptedForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("status = ?", models.MatchStatusAccepted).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Where(`NOT EXISTS (
			SELECT 1 FROM blocks b
			WHERE (b.from_user_id IN (matches.from_user_id, matches.to_user_id) AND b.to_user_id = ?)
			   OR (b.from_user_id = ? AND b.to_user_id IN (matches.from_user_id, matches.to_user_id))
		)`, userID, userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *matchRepository) CountPendingReceived(ctx context.Context, recipientUserID uint, petIDs []uint) (int64, error) {
	if len(petIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("to_pet_id IN ? AND status = ?", petIDs, models.MatchStatusPending).
		Where(blockFilterSQL, recipientUserID, recipientUserID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *matchRepository) GetAcceptedForPets(ctx context.Context, petIDs []uint) ([]models.Match, error) {
	if len(petIDs) == 0 {
		return nil, nil
	}

	var matches []models.Match
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.MatchStatusAccepted).
		Where("from_pet_id IN ? OR to_pet_id IN ?", petIDs, petIDs).
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

// ListLikedPetIDs returns the target pet IDs of the user's live outgoing
// edges. Discovery excludes these so already-liked pets never resurface.
func (r *matchRepository) ListLikedPetIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("from_user_id = ?", userID).
		Distinct().
		Pluck("to_pet_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
