package server

import (
	"pawnder/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePetInput is the request body for creating a pet profile.
type CreatePetInput struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Bio     string `json:"bio"`
}

// CreatePet handles POST /api/pets
func (s *Server) CreatePet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input CreatePetInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pet, err := s.petService.CreatePet(c.Context(), userID, input.Name, input.Species, input.Breed, input.Bio)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pet)
}

// GetMyPets handles GET /api/pets/me
func (s *Server) GetMyPets(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	pets, err := s.petService.GetMyPets(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(pets)
}

// ActivatePet handles POST /api/pets/:petId/activate
func (s *Server) ActivatePet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petID, err := s.parseID(c, "petId")
	if err != nil {
		return nil
	}

	if err := s.petService.SetActivePet(c.Context(), userID, petID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"active_pet_id": petID,
	})
}

// DeletePet handles DELETE /api/pets/:petId
func (s *Server) DeletePet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	petID, err := s.parseID(c, "petId")
	if err != nil {
		return nil
	}

	if err := s.petService.DeletePet(c.Context(), userID, petID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
