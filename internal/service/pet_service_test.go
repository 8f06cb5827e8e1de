package service

import (
	"context"
	"testing"

	"pawnder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetServiceCreateFirstPetActive(t *testing.T) {
	pets := ownedPetRepo()
	pets.getByUserIDFn = func(context.Context, uint) ([]models.Pet, error) { return nil, nil }
	pets.createFn = func(_ context.Context, p *models.Pet) error {
		p.ID = 101
		return nil
	}
	activated := uint(0)
	pets.setActiveFn = func(_ context.Context, _, petID uint) error {
		activated = petID
		return nil
	}

	svc := NewPetService(pets)
	pet, err := svc.CreatePet(context.Background(), 1, "  Rex ", "Dog", "Beagle", "chases squirrels")
	require.NoError(t, err)
	assert.Equal(t, uint(101), activated)
	assert.True(t, pet.IsActive)
	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, "dog", pet.Species)
}

func TestPetServiceCreateSecondPetInactive(t *testing.T) {
	pets := ownedPetRepo()
	pets.getByUserIDFn = func(context.Context, uint) ([]models.Pet, error) {
		return []models.Pet{{ID: 100}}, nil
	}
	pets.setActiveFn = func(context.Context, uint, uint) error {
		t.Fatal("second pet must not be auto-activated")
		return nil
	}

	svc := NewPetService(pets)
	pet, err := svc.CreatePet(context.Background(), 1, "Mia", "cat", "", "")
	require.NoError(t, err)
	assert.False(t, pet.IsActive)
}

func TestPetServiceCreatePetInvalid(t *testing.T) {
	svc := NewPetService(ownedPetRepo())

	_, err := svc.CreatePet(context.Background(), 1, "", "dog", "", "")
	requireAppError(t, err, "VALIDATION_ERROR")

	_, err = svc.CreatePet(context.Background(), 1, "Rex", "dragon", "", "")
	requireAppError(t, err, "VALIDATION_ERROR")
}

func TestPetServiceDeletePet(t *testing.T) {
	pets := ownedPetRepo()
	deleted := uint(0)
	pets.deleteFn = func(_ context.Context, petID uint) error {
		deleted = petID
		return nil
	}

	svc := NewPetService(pets)
	require.NoError(t, svc.DeletePet(context.Background(), 1, 101))
	assert.Equal(t, uint(101), deleted)
}

func TestPetServiceDeleteForeignPetMasked(t *testing.T) {
	pets := ownedPetRepo()
	pets.deleteFn = func(context.Context, uint) error {
		t.Fatal("foreign pet must not be deleted")
		return nil
	}

	svc := NewPetService(pets)
	// Pet 202 belongs to user 2 in the owned-pet fixture.
	err := svc.DeletePet(context.Background(), 1, 202)
	requireAppError(t, err, "NOT_FOUND")
}

func TestBlockServiceSelf(t *testing.T) {
	svc := NewBlockService(noopBlockRepo(), noopUserRepo())
	err := svc.BlockUser(context.Background(), 3, 3)
	requireAppError(t, err, "VALIDATION_ERROR")
}

func TestBlockServiceRecordsEdge(t *testing.T) {
	blocks := noopBlockRepo()
	var recorded *models.Block
	blocks.createFn = func(_ context.Context, b *models.Block) error {
		recorded = b
		return nil
	}

	svc := NewBlockService(blocks, noopUserRepo())
	require.NoError(t, svc.BlockUser(context.Background(), 1, 2))
	require.NotNil(t, recorded)
	assert.Equal(t, uint(1), recorded.FromUserID)
	assert.Equal(t, uint(2), recorded.ToUserID)
}

func TestBlockServiceUnknownTarget(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewBlockService(noopBlockRepo(), users)
	err := svc.BlockUser(context.Background(), 1, 42)
	requireAppError(t, err, "NOT_FOUND")
}
