package service

import (
	"context"

	"sewsmart/internal/models"
	"sewsmart/internal/repository"
)

type WishlistService struct {
	wishlistRepo repository.WishlistRepository
}

type AddWishlistItemInput struct {
	UserID     string
	DesignID   string
	DesignerID string
	Title      string
	Price      float64
	Image      string
}

func NewWishlistService(wishlistRepo repository.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID string) (*models.Wishlist, error) {
	return s.wishlistRepo.GetOrCreate(ctx, userID)
}

// AddItem saves the design to the wishlist. Adding a design that is already
// saved leaves the list unchanged.
func (s *WishlistService) AddItem(ctx context.Context, in AddWishlistItemInput) (*models.Wishlist, error) {
	if in.DesignID == "" {
		return nil, models.NewValidationError("Design id is required")
	}

	list, err := s.wishlistRepo.GetOrCreate(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	item := &models.WishlistItem{
		DesignID:   in.DesignID,
		DesignerID: in.DesignerID,
		Title:      in.Title,
		Price:      in.Price,
		Image:      in.Image,
	}
	if err := s.wishlistRepo.AddItem(ctx, list.ID, item); err != nil {
		return nil, err
	}
	return s.wishlistRepo.GetOrCreate(ctx, in.UserID)
}

// RemoveItem drops the design from the wishlist; a design that is not saved
// is a no-op.
func (s *WishlistService) RemoveItem(ctx context.Context, userID, designID string) (*models.Wishlist, error) {
	list, err := s.wishlistRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.wishlistRepo.RemoveItem(ctx, list.ID, designID); err != nil {
		return nil, err
	}
	return s.wishlistRepo.GetOrCreate(ctx, userID)
}
