package service

import (
	"context"
	"strings"

	"pawnder/internal/models"
	"pawnder/internal/repository"
	"pawnder/internal/validation"
)

// PetService provides pet profile business logic.
type PetService struct {
	petRepo repository.PetRepository
}

// NewPetService returns a new PetService.
func NewPetService(petRepo repository.PetRepository) *PetService {
	return &PetService{petRepo: petRepo}
}

// CreatePet validates and creates a pet profile for the user. The first pet
// a user creates becomes their active pet automatically.
func (s *PetService) CreatePet(ctx context.Context, userID uint, name, species, breed, bio string) (*models.Pet, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidatePetName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePetSpecies(species); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePetBio(bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.petRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pet := &models.Pet{
		UserID:  userID,
		Name:    name,
		Species: strings.ToLower(strings.TrimSpace(species)),
		Breed:   strings.TrimSpace(breed),
		Bio:     strings.TrimSpace(bio),
	}
	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		if err := s.petRepo.SetActive(ctx, userID, pet.ID); err != nil {
			return nil, err
		}
		pet.IsActive = true
	}

	return pet, nil
}

// GetMyPets returns the user's pets.
func (s *PetService) GetMyPets(ctx context.Context, userID uint) ([]models.Pet, error) {
	pets, err := s.petRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}

// SetActivePet marks one of the user's pets as active, deactivating the
// others.
func (s *PetService) SetActivePet(ctx context.Context, userID, petID uint) error {
	return s.petRepo.SetActive(ctx, userID, petID)
}

// DeletePet retires a pet profile. The row is soft-deleted so existing match
// history keeps resolving. Someone else's pet is masked as not found.
func (s *PetService) DeletePet(ctx context.Context, userID, petID uint) error {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return err
	}
	if pet.UserID != userID {
		return models.NewNotFoundError("Pet", petID)
	}
	return s.petRepo.Delete(ctx, petID)
}
