package service

import (
	"context"
	"math/rand"

	"pawnder/internal/featureflags"
	"pawnder/internal/models"
	"pawnder/internal/repository"
)

// DiscoveryService builds the candidate pool a user swipes through.
type DiscoveryService struct {
	petRepo   repository.PetRepository
	matchRepo repository.MatchRepository
	blockRepo repository.BlockRepository
	flags     *featureflags.Manager
}

// NewDiscoveryService returns a new DiscoveryService. flags may be nil.
func NewDiscoveryService(petRepo repository.PetRepository, matchRepo repository.MatchRepository, blockRepo repository.BlockRepository, flags *featureflags.Manager) *DiscoveryService {
	return &DiscoveryService{
		petRepo:   petRepo,
		matchRepo: matchRepo,
		blockRepo: blockRepo,
		flags:     flags,
	}
}

// GetCandidates returns active pets the user can like: never their own pets,
// never pets of users in a block relation with them (either direction), and
// never pets already targeted by one of their live outgoing likes.
func (s *DiscoveryService) GetCandidates(ctx context.Context, userID uint) ([]models.Pet, error) {
	blockedIDs, err := s.blockRepo.ListBlockedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	excludeUsers := append([]uint{userID}, blockedIDs...)

	likedPetIDs, err := s.matchRepo.ListLikedPetIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	pets, err := s.petRepo.ListCandidates(ctx, excludeUsers, likedPetIDs)
	if err != nil {
		return nil, err
	}

	if s.flags.Enabled(featureflags.FlagDiscoveryShuffle, userID) {
		rand.Shuffle(len(pets), func(i, j int) {
			pets[i], pets[j] = pets[j], pets[i]
		})
	}

	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}
