package service

import (
	"context"
	"errors"
	"log/slog"

	"sewsmart/internal/middleware"
	"sewsmart/internal/models"
	"sewsmart/internal/observability"
	"sewsmart/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// OrderEventPublisher emits order lifecycle events to the message broker.
type OrderEventPublisher interface {
	PublishOrderCreated(order *models.Order) error
}

type OrderService struct {
	orderRepo repository.OrderRepository
	publisher OrderEventPublisher
}

type OrderItemInput struct {
	DesignID   string  `json:"design_id"`
	DesignerID string  `json:"designer_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
}

type CreateOrderInput struct {
	UserID string
	Items  []OrderItemInput
}

func NewOrderService(orderRepo repository.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{orderRepo: orderRepo, publisher: publisher}
}

// CreateOrder snapshots the items into a pending order and clears the user's
// cart in the same transaction. The total is computed server side.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	span, ctx := observability.NewSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	if len(in.Items) == 0 {
		return nil, models.NewValidationError("Order must contain at least one item")
	}

	var total float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.DesignID == "" {
			return nil, models.NewValidationError("Each order item needs a design id")
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, models.OrderItem{
			DesignID:   it.DesignID,
			DesignerID: it.DesignerID,
			Title:      it.Title,
			Price:      it.Price,
			Image:      it.Image,
			Quantity:   qty,
		})
		total += it.Price * float64(qty)
	}

	order := &models.Order{
		UserID:      in.UserID,
		Items:       items,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
	}
	span.AddAttributes(
		attribute.Int("order.item_count", len(items)),
		attribute.Float64("order.total", total),
	)

	if err := s.orderRepo.CreateWithCartClear(ctx, order); err != nil {
		span.SetError(err)
		return nil, err
	}

	middleware.OrdersCreated.Inc()

	// The order is committed; a broker outage must not fail the checkout.
	if s.publisher != nil {
		if pubErr := s.publisher.PublishOrderCreated(order); pubErr != nil {
			middleware.Logger.Warn("Failed to publish order.created event",
				slog.Uint64("order_id", uint64(order.ID)),
				slog.String("error", pubErr.Error()),
			)
		}
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *OrderService) GetOrder(ctx context.Context, userID string, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByUserAndID(ctx, userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Order", orderID)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves one of the caller's orders to a new lifecycle state and
// returns the updated order.
func (s *OrderService) UpdateStatus(ctx context.Context, userID string, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid order status")
	}

	// Scoped lookup first, so another user's order id reads as not found.
	if _, err := s.GetOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	if _, err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, userID, orderID)
}
