package repository

import (
	"context"
	"errors"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// PetRepository defines the interface for pet data operations
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id uint) (*models.Pet, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Pet, error)
	GetActivePet(ctx context.Context, userID uint) (*models.Pet, error)
	SetActive(ctx context.Context, userID, petID uint) error
	ListCandidates(ctx context.Context, excludeUserIDs, excludePetIDs []uint) ([]models.Pet, error)
	Delete(ctx context.Context, petID uint) error
}

// petRepository implements PetRepository
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *models.Pet) error {
	if err := r.db.WithContext(ctx).Create(pet).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *petRepository) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pet", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &pet, nil
}

func (r *petRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&pets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pets, nil
}

func (r *petRepository) GetActivePet(ctx context.Context, userID uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no active pet
		}
		return nil, models.NewInternalError(err)
	}
	return &pet, nil
}

// SetActive marks one pet active and deactivates the owner's other pets in
// the same transaction, so at most one live pet per user is ever active.
func (r *petRepository) SetActive(ctx context.Context, userID, petID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pet models.Pet
		if err := tx.Where("id = ? AND user_id = ?", petID, userID).First(&pet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Pet", petID)
			}
			return models.NewInternalError(err)
		}

		if err := tx.Model(&models.Pet{}).
			Where("user_id = ? AND id != ?", userID, petID).
			Update("is_active", false).Error; err != nil {
			return models.NewInternalError(err)
		}

		if err := tx.Model(&models.Pet{}).
			Where("id = ?", petID).
			Update("is_active", true).Error; err != nil {
			return models.NewInternalError(err)
		}

		return nil
	})
	return err
}

// ListCandidates returns active live pets outside the excluded user and pet
// sets, in stable id order. Callers pass the viewer's own user ID plus all
// blocked parties as excludeUserIDs, and already-liked targets as
// excludePetIDs.
func (r *petRepository) ListCandidates(ctx context.Context, excludeUserIDs, excludePetIDs []uint) ([]models.Pet, error) {
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("User").
		Order("id")
	if len(excludeUserIDs) > 0 {
		q = q.Where("user_id NOT IN ?", excludeUserIDs)
	}
	if len(excludePetIDs) > 0 {
		q = q.Where("id NOT IN ?", excludePetIDs)
	}

	var pets []models.Pet
	if err := q.Find(&pets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pets, nil
}

func (r *petRepository) Delete(ctx context.Context, petID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Pet{}, petID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
