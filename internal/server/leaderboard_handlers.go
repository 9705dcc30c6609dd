package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard handles GET /api/leaderboard (public). Returns at most five
// users ranked by weighted likes received within the trailing window.
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	entries, err := s.leaderboardService.Leaderboard(ctx)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(entries)
}
