package repository

import (
	"context"
	"testing"

	"pawnder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepositorySetActiveExclusivity(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPetRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "maria", Email: "maria@example.com"}
	require.NoError(t, db.Create(user).Error)

	a := &models.Pet{UserID: user.ID, Name: "Apollo"}
	b := &models.Pet{UserID: user.ID, Name: "Biscuit"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.SetActive(ctx, user.ID, a.ID))
	active, err := repo.GetActivePet(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, a.ID, active.ID)

	// Activating the second pet deactivates the first.
	require.NoError(t, repo.SetActive(ctx, user.ID, b.ID))
	active, err = repo.GetActivePet(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, b.ID, active.ID)

	pets, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	activeCount := 0
	for _, p := range pets {
		if p.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestPetRepositorySetActiveForeignPet(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPetRepository(db)
	ctx := context.Background()

	owner := &models.User{Username: "own", Email: "own@example.com"}
	other := &models.User{Username: "oth", Email: "oth@example.com"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)

	pet := &models.Pet{UserID: owner.ID, Name: "Ziggy"}
	require.NoError(t, repo.Create(ctx, pet))

	err := repo.SetActive(ctx, other.ID, pet.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPetRepositoryGetActivePetNone(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPetRepository(db)

	pet, err := repo.GetActivePet(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, pet)
}
