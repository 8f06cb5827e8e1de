package service

import (
	"context"

	"pawnder/internal/models"
	"pawnder/internal/repository"
)

// StatsService aggregates match counters and client badge numbers.
type StatsService struct {
	matchRepo repository.MatchRepository
	petRepo   repository.PetRepository
	chat      ChatActivitySource
}

// NewStatsService returns a new StatsService.
func NewStatsService(matchRepo repository.MatchRepository, petRepo repository.PetRepository, chat ChatActivitySource) *StatsService {
	return &StatsService{
		matchRepo: matchRepo,
		petRepo:   petRepo,
		chat:      chat,
	}
}

// GetStats returns the user's confirmed match count and pending likes
// received. Users without pets get zeros, never an error.
func (s *StatsService) GetStats(ctx context.Context, userID uint) (*models.Stats, error) {
	matches, err := s.matchRepo.CountAcceptedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pets, err := s.petRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	petIDs := make([]uint, 0, len(pets))
	for _, p := range pets {
		petIDs = append(petIDs, p.ID)
	}

	likes, err := s.matchRepo.CountPendingReceived(ctx, userID, petIDs)
	if err != nil {
		return nil, err
	}

	return &models.Stats{Matches: matches, Likes: likes}, nil
}

// GetBadgeCounts returns the client badge numbers: accepted matches with
// unread chat messages, plus the pending likes received count. petID scopes
// both to one owned pet; zero or an unowned petID aggregates all pets.
func (s *StatsService) GetBadgeCounts(ctx context.Context, userID, petID uint) (*models.BadgeCounts, error) {
	pets, err := s.petRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ownIDs := make([]uint, 0, len(pets))
	scope := []uint(nil)
	for _, p := range pets {
		ownIDs = append(ownIDs, p.ID)
		if petID != 0 && p.ID == petID {
			scope = []uint{petID}
		}
	}
	if scope == nil {
		scope = ownIDs
	}

	counts := &models.BadgeCounts{UnreadChats: []uint{}}
	if len(scope) == 0 {
		return counts, nil
	}

	counts.FavoriteBadge, err = s.matchRepo.CountPendingReceived(ctx, userID, scope)
	if err != nil {
		return nil, err
	}

	accepted, err := s.matchRepo.GetAcceptedForPets(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(accepted) == 0 {
		return counts, nil
	}

	matchIDs := make([]uint, 0, len(accepted))
	for _, m := range accepted {
		matchIDs = append(matchIDs, m.ID)
	}

	// Messages sent by any of the viewer's own pets never count as unread,
	// even when the badge is scoped to a single pet.
	unread, err := s.chat.UnreadMatches(ctx, matchIDs, ownIDs)
	if err != nil {
		return nil, err
	}
	if unread != nil {
		counts.UnreadChats = unread
	}

	return counts, nil
}
