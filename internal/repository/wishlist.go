package repository

import (
	"context"
	"errors"

	"sewsmart/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository defines the interface for wishlist data operations
type WishlistRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*models.Wishlist, error)
	AddItem(ctx context.Context, listID uint, item *models.WishlistItem) error
	RemoveItem(ctx context.Context, listID uint, designID string) (int64, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// GetOrCreate returns the user's wishlist, creating an empty one on first use.
func (r *wishlistRepository) GetOrCreate(ctx context.Context, userID string) (*models.Wishlist, error) {
	var list models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("wishlist_items.id ASC")
		}).
		Where("user_id = ?", userID).
		First(&list).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		list = models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}
		if createErr := r.db.WithContext(ctx).Create(&list).Error; createErr != nil {
			return nil, createErr
		}
		return &list, nil
	}
	if err != nil {
		return nil, err
	}
	if list.Items == nil {
		list.Items = []models.WishlistItem{}
	}
	return &list, nil
}

// AddItem inserts the item unless the design is already on the list.
func (r *wishlistRepository) AddItem(ctx context.Context, listID uint, item *models.WishlistItem) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("wishlist_id = ? AND design_id = ?", listID, item.DesignID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	item.WishlistID = listID
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) RemoveItem(ctx context.Context, listID uint, designID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("wishlist_id = ? AND design_id = ?", listID, designID).
		Delete(&models.WishlistItem{})
	return result.RowsAffected, result.Error
}
