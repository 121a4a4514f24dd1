package server

import (
	"sewsmart/internal/models"
	"sewsmart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetWishlist handles GET /api/wishlist
func (s *Server) GetWishlist(c *fiber.Ctx) error {
	ctx := c.Context()

	list, err := s.wishlistService.GetWishlist(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// AddWishlistItem handles POST /api/wishlist
func (s *Server) AddWishlistItem(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		DesignID   string  `json:"design_id"`
		DesignerID string  `json:"designer_id"`
		Title      string  `json:"title"`
		Price      float64 `json:"price"`
		Image      string  `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	list, err := s.wishlistService.AddItem(ctx, service.AddWishlistItemInput{
		UserID:     currentUserID(c),
		DesignID:   req.DesignID,
		DesignerID: req.DesignerID,
		Title:      req.Title,
		Price:      req.Price,
		Image:      req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// RemoveWishlistItem handles DELETE /api/wishlist/:designId
func (s *Server) RemoveWishlistItem(c *fiber.Ctx) error {
	ctx := c.Context()

	list, err := s.wishlistService.RemoveItem(ctx, currentUserID(c), c.Params("designId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
