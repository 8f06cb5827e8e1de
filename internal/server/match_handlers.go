package server

import (
	"pawnder/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RequestMatchInput is the request body for sending a like.
type RequestMatchInput struct {
	FromPetID uint `json:"from_pet_id"`
	ToPetID   uint `json:"to_pet_id"`
}

// RespondInput is the request body for responding to a like.
type RespondInput struct {
	Action string `json:"action"`
}

// RequestMatch handles POST /api/matches/request
func (s *Server) RequestMatch(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var input RequestMatchInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if input.FromPetID == 0 || input.ToPetID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("from_pet_id and to_pet_id are required"))
	}

	// Resolve the target owner; the service re-checks ownership and blocks.
	toPet, err := s.petRepo.GetByID(ctx, input.ToPetID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.matchService.SendLike(ctx, userID, input.FromPetID, toPet.UserID, input.ToPetID)
	if err != nil {
		return respondError(c, err)
	}

	if result.IsMatch {
		fromPet, petErr := s.petRepo.GetByID(ctx, input.FromPetID)
		if petErr == nil {
			s.publishUserEvent(toPet.UserID, EventMatchCreated, map[string]interface{}{
				"match_id": result.MatchID,
				"pet":      petSummary(*fromPet),
			})
			s.publishUserEvent(userID, EventMatchCreated, map[string]interface{}{
				"match_id": result.MatchID,
				"pet":      petSummary(*toPet),
			})
		}
	} else {
		fromPet, petErr := s.petRepo.GetByID(ctx, input.FromPetID)
		if petErr == nil {
			s.publishUserEvent(toPet.UserID, EventLikeReceived, map[string]interface{}{
				"match_id": result.MatchID,
				"pet":      petSummary(*fromPet),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// RespondToLike handles POST /api/matches/:matchId/respond
func (s *Server) RespondToLike(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	matchID, err := s.parseID(c, "matchId")
	if err != nil {
		return nil
	}

	var input RespondInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Snapshot the edge before the service mutates or soft-deletes it, so
	// realtime events still know both parties.
	edge, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.matchService.RespondToLike(ctx, userID, matchID, input.Action)
	if err != nil {
		return respondError(c, err)
	}

	other := edge.FromUserID
	if other == userID {
		other = edge.ToUserID
	}

	if result.IsMatch {
		s.publishUserEvent(edge.FromUserID, EventMatchCreated, map[string]interface{}{
			"match_id": result.MatchID,
			"pet":      petSummary(edge.ToPet),
		})
		s.publishUserEvent(edge.ToUserID, EventMatchCreated, map[string]interface{}{
			"match_id": result.MatchID,
			"pet":      petSummary(edge.FromPet),
		})
	} else if result.Status == models.MatchStatusAccepted {
		// Unmatching notifies the other party; a declined pending like stays
		// silent so the sender never learns it was rejected.
		s.publishUserEvent(other, EventUnmatched, map[string]interface{}{
			"match_id": result.MatchID,
		})
	}

	return c.JSON(result)
}

// GetLikesReceived handles GET /api/matches/likes
func (s *Server) GetLikesReceived(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	likes, err := s.matchService.GetLikesReceived(ctx, userID, queryPetID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"likes": likes,
		"count": len(likes),
	})
}
