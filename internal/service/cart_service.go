package service

import (
	"context"
	"errors"

	"sewsmart/internal/models"
	"sewsmart/internal/repository"

	"gorm.io/gorm"
)

type CartService struct {
	cartRepo repository.CartRepository
}

type AddCartItemInput struct {
	UserID     string
	DesignID   string
	DesignerID string
	Title      string
	Price      float64
	Image      string
	// Quantity is the delta to merge into an existing line. Zero means the
	// caller omitted it and defaults to 1; negative values are rejected.
	Quantity int
}

func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// GetCart returns the user's cart with the total computed.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Total = cart.ComputeTotal()
	return cart, nil
}

// AddItem merges the design into the cart: a new line for a new design, a
// quantity bump for one already present.
func (s *CartService) AddItem(ctx context.Context, in AddCartItemInput) (*models.Cart, error) {
	if in.DesignID == "" {
		return nil, models.NewValidationError("Design id is required")
	}
	if in.Quantity < 0 {
		return nil, models.NewValidationError("Quantity must be positive")
	}
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindItem(ctx, cart.ID, in.DesignID)
	switch {
	case err == nil:
		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+qty); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := &models.CartItem{
			CartID:     cart.ID,
			DesignID:   in.DesignID,
			DesignerID: in.DesignerID,
			Title:      in.Title,
			Price:      in.Price,
			Image:      in.Image,
			Quantity:   qty,
		}
		if err := s.cartRepo.CreateItem(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, in.UserID)
}

// SetQuantity replaces the quantity of an existing line.
func (s *CartService) SetQuantity(ctx context.Context, userID, designID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, models.NewValidationError("Quantity must be positive")
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItem(ctx, cart.ID, designID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundMessageError("Item not found in cart")
	}
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem deletes the line for the design. Removing a design that is not
// in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, designID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cartRepo.DeleteItem(ctx, cart.ID, designID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}
