package server

import (
	"sewsmart/internal/models"
	"sewsmart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SyncUser handles POST /api/users
func (s *Server) SyncUser(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		ExternalID string `json:"external_id"`
		Username   string `json:"username"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Avatar     string `json:"avatar"`
		Bio        string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, created, err := s.userService.SyncUser(ctx, service.SyncUserInput{
		ExternalID: req.ExternalID,
		Username:   req.Username,
		Name:       req.Name,
		Email:      req.Email,
		Avatar:     req.Avatar,
		Bio:        req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(user)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.userService.GetUser(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
