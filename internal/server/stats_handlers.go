package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetStats handles GET /api/stats
func (s *Server) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stats, err := s.statsService.GetStats(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

// GetBadgeCounts handles GET /api/stats/badges
func (s *Server) GetBadgeCounts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	counts, err := s.statsService.GetBadgeCounts(c.Context(), userID, queryPetID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(counts)
}
