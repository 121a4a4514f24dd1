package server

import (
	"sewsmart/internal/models"
	"sewsmart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCart handles GET /api/cart
func (s *Server) GetCart(c *fiber.Ctx) error {
	ctx := c.Context()

	cart, err := s.cartService.GetCart(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// AddCartItem handles POST /api/cart
func (s *Server) AddCartItem(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		DesignID   string  `json:"design_id"`
		DesignerID string  `json:"designer_id"`
		Title      string  `json:"title"`
		Price      float64 `json:"price"`
		Image      string  `json:"image"`
		Quantity   int     `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	cart, err := s.cartService.AddItem(ctx, service.AddCartItemInput{
		UserID:     currentUserID(c),
		DesignID:   req.DesignID,
		DesignerID: req.DesignerID,
		Title:      req.Title,
		Price:      req.Price,
		Image:      req.Image,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// SetCartItemQuantity handles PATCH /api/cart/:designId
func (s *Server) SetCartItemQuantity(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	cart, err := s.cartService.SetQuantity(ctx, currentUserID(c), c.Params("designId"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}

// RemoveCartItem handles DELETE /api/cart/:designId
func (s *Server) RemoveCartItem(c *fiber.Ctx) error {
	ctx := c.Context()

	cart, err := s.cartService.RemoveItem(ctx, currentUserID(c), c.Params("designId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart)
}
