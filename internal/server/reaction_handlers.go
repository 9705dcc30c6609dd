package server

import (
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ToggleReaction handles POST /api/reactions (protected). A first call for a
// (user, target) tuple likes the target, a second call removes the like.
func (s *Server) ToggleReaction(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		TargetType string `json:"target_type"`
		TargetID   uint   `json:"target_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	state, err := s.reactionService.Toggle(ctx, service.ToggleInput{
		UserID:     userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	status := fiber.StatusOK
	if state == service.StateLiked {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"status": state})
}
