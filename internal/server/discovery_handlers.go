package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetCandidates handles GET /api/discovery/candidates
func (s *Server) GetCandidates(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	candidates, err := s.discoveryService.GetCandidates(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"candidates": candidates,
		"count":      len(candidates),
	})
}
