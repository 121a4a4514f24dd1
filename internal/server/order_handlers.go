package server

import (
	"sewsmart/internal/models"
	"sewsmart/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder handles POST /api/orders
func (s *Server) CreateOrder(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Items []service.OrderItemInput `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	order, err := s.orderService.CreateOrder(ctx, service.CreateOrderInput{
		UserID: currentUserID(c),
		Items:  req.Items,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrders handles GET /api/orders
func (s *Server) GetOrders(c *fiber.Ctx) error {
	ctx := c.Context()

	orders, err := s.orderService.ListOrders(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// GetOrder handles GET /api/orders/:orderId
func (s *Server) GetOrder(c *fiber.Ctx) error {
	ctx := c.Context()

	orderID, err := s.parseID(c, "orderId")
	if err != nil {
		return nil
	}

	order, err := s.orderService.GetOrder(ctx, currentUserID(c), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// UpdateOrderStatus handles PATCH /api/orders/:orderId/status
func (s *Server) UpdateOrderStatus(c *fiber.Ctx) error {
	ctx := c.Context()

	orderID, err := s.parseID(c, "orderId")
	if err != nil {
		return nil
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	order, err := s.orderService.UpdateStatus(ctx, currentUserID(c), orderID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
