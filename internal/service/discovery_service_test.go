package service

import (
	"context"
	"testing"

	"pawnder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoveryServiceExclusions(t *testing.T) {
	blocks := noopBlockRepo()
	blocks.listBlockedUserIDsFn = func(context.Context, uint) ([]uint, error) { return []uint{3, 4}, nil }
	matches := noopMatchRepo()
	matches.listLikedPetIDsFn = func(context.Context, uint) ([]uint, error) { return []uint{202}, nil }

	pets := ownedPetRepo()
	var gotUsers, gotPets []uint
	pets.listCandidatesFn = func(_ context.Context, excludeUserIDs, excludePetIDs []uint) ([]models.Pet, error) {
		gotUsers = excludeUserIDs
		gotPets = excludePetIDs
		return []models.Pet{{ID: 505, UserID: 5}}, nil
	}

	svc := NewDiscoveryService(pets, matches, blocks, nil)
	candidates, err := svc.GetCandidates(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3, 4}, gotUsers, "own user and blocked parties excluded")
	assert.Equal(t, []uint{202}, gotPets, "already-liked pets excluded")
	require.Len(t, candidates, 1)
	assert.Equal(t, uint(505), candidates[0].ID)
}

func TestDiscoveryServiceEmptyPool(t *testing.T) {
	pets := ownedPetRepo()
	pets.listCandidatesFn = func(context.Context, []uint, []uint) ([]models.Pet, error) { return nil, nil }

	svc := NewDiscoveryService(pets, noopMatchRepo(), noopBlockRepo(), nil)
	candidates, err := svc.GetCandidates(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}
