package service

import (
	"context"
	"strings"

	"pawnder/internal/models"
	"pawnder/internal/observability"
	"pawnder/internal/repository"
)

// MatchService provides like, match, and unmatch business logic.
type MatchService struct {
	matchRepo repository.MatchRepository
	petRepo   repository.PetRepository
	blockRepo repository.BlockRepository
	quota     *QuotaService
}

// NewMatchService returns a new MatchService.
func NewMatchService(matchRepo repository.MatchRepository, petRepo repository.PetRepository, blockRepo repository.BlockRepository, quota *QuotaService) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		petRepo:   petRepo,
		blockRepo: blockRepo,
		quota:     quota,
	}
}

// SendLike records a like from one pet to another. A reciprocal pending like
// on the same pet pair is promoted to a confirmed match instead of creating a
// second edge. The quota unit is consumed before the edge checks and is not
// refunded when the like is later rejected as a duplicate.
func (s *MatchService) SendLike(ctx context.Context, fromUserID, fromPetID, toUserID, toPetID uint) (*models.LikeResult, error) {
	if fromUserID == toUserID {
		observability.LikesSentTotal.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("You cannot like your own pet")
	}

	fromPet, err := s.petRepo.GetByID(ctx, fromPetID)
	if err != nil {
		return nil, err
	}
	if fromPet.UserID != fromUserID {
		return nil, models.NewUnauthorizedError("You can only send likes from your own pet")
	}

	toPet, err := s.petRepo.GetByID(ctx, toPetID)
	if err != nil {
		return nil, err
	}
	if toPet.UserID != toUserID {
		return nil, models.NewValidationError("Pet does not belong to the target user")
	}

	// A block in either direction hides the target entirely.
	blocked, err := s.blockRepo.IsBlocked(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, models.NewNotFoundError("Pet", toPetID)
	}

	if err := s.quota.Consume(ctx, fromUserID, models.ActionRequestMatch); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "QUOTA_EXCEEDED" {
			observability.LikesSentTotal.WithLabelValues("quota_exceeded").Inc()
		}
		return nil, err
	}

	existing, err := s.matchRepo.GetLiveEdge(ctx, fromPetID, toPetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		observability.LikesSentTotal.WithLabelValues("conflict").Inc()
		return nil, models.NewConflictError("You already liked this pet")
	}

	reciprocal, err := s.matchRepo.GetLiveEdge(ctx, toPetID, fromPetID)
	if err != nil {
		return nil, err
	}
	if reciprocal != nil {
		if reciprocal.Status == models.MatchStatusAccepted {
			observability.LikesSentTotal.WithLabelValues("conflict").Inc()
			return nil, models.NewConflictError("You are already matched with this pet")
		}

		flipped, err := s.matchRepo.AcceptPending(ctx, reciprocal.ID)
		if err != nil {
			return nil, err
		}
		if flipped {
			observability.LikesSentTotal.WithLabelValues("matched").Inc()
			observability.MatchesCreatedTotal.Inc()
			return &models.LikeResult{
				MatchID: reciprocal.ID,
				Status:  models.MatchStatusAccepted,
				IsMatch: true,
				Message: "It's a match!",
			}, nil
		}
		// The reciprocal edge was passed on concurrently; fall through and
		// record our own pending like.
	}

	match := &models.Match{
		FromUserID: fromUserID,
		FromPetID:  fromPetID,
		ToUserID:   toUserID,
		ToPetID:    toPetID,
		Status:     models.MatchStatusPending,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "CONFLICT" {
			observability.LikesSentTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	observability.LikesSentTotal.WithLabelValues("pending").Inc()
	return &models.LikeResult{
		MatchID: match.ID,
		Status:  models.MatchStatusPending,
		IsMatch: false,
	}, nil
}

// RespondToLike applies a match or pass action to an existing edge. Matching
// is recipient-only and valid only while the edge is pending; a non-pending
// edge is reported as not found so callers cannot probe its state. Passing is
// allowed for either participant and covers both declining a pending like and
// unmatching a confirmed one.
func (s *MatchService) RespondToLike(ctx context.Context, userID, matchID uint, action string) (*models.RespondResult, error) {
	act := strings.ToLower(strings.TrimSpace(action))
	if act != "match" && act != "pass" {
		return nil, models.NewValidationError("Action must be 'match' or 'pass'")
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.FromUserID != userID && match.ToUserID != userID {
		return nil, models.NewUnauthorizedError("You can only respond to likes involving your pets")
	}

	if act == "match" {
		if match.ToUserID != userID {
			return nil, models.NewUnauthorizedError("Only the like recipient can confirm a match")
		}
		if match.Status != models.MatchStatusPending {
			return nil, models.NewNotFoundError("Match", matchID)
		}
		if match.FromPet.ID == 0 || match.ToPet.ID == 0 || match.FromUser.ID == 0 || match.ToUser.ID == 0 {
			return nil, models.NewDataIntegrityError("Missing pet or user info", nil)
		}

		flipped, err := s.matchRepo.AcceptPending(ctx, matchID)
		if err != nil {
			return nil, err
		}
		if !flipped {
			// Lost a race against a concurrent respond; the pending edge is
			// gone either way.
			return nil, models.NewNotFoundError("Match", matchID)
		}

		observability.MatchesCreatedTotal.Inc()
		return &models.RespondResult{
			MatchID: matchID,
			Status:  models.MatchStatusAccepted,
			IsMatch: true,
			Message: "It's a match!",
		}, nil
	}

	prior := match.Status
	if err := s.matchRepo.SoftDelete(ctx, matchID); err != nil {
		return nil, err
	}
	observability.UnmatchesTotal.WithLabelValues(string(prior)).Inc()

	message := "Passed"
	if prior == models.MatchStatusAccepted {
		message = "Unmatched"
	}
	return &models.RespondResult{
		MatchID: matchID,
		Status:  prior,
		IsMatch: false,
		Message: message,
	}, nil
}

// GetLikesReceived returns live likes into the user's pets, newest first.
// petID narrows the result to one pet; zero or a pet the user does not own
// falls back to all of the user's pets.
func (s *MatchService) GetLikesReceived(ctx context.Context, userID, petID uint) ([]models.Match, error) {
	petIDs, err := s.scopePets(ctx, userID, petID)
	if err != nil {
		return nil, err
	}
	if len(petIDs) == 0 {
		return []models.Match{}, nil
	}

	matches, err := s.matchRepo.GetLikesReceived(ctx, userID, petIDs)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

// scopePets resolves the pet scope for an optional pet filter: the single
// owned pet when petID matches, otherwise all of the user's pets.
func (s *MatchService) scopePets(ctx context.Context, userID, petID uint) ([]uint, error) {
	pets, err := s.petRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(pets))
	for _, p := range pets {
		if petID != 0 && p.ID == petID {
			return []uint{petID}, nil
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}
