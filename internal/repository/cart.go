package repository

import (
	"context"
	"errors"

	"sewsmart/internal/models"

	"gorm.io/gorm"
)

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*models.Cart, error)
	FindItem(ctx context.Context, cartID uint, designID string) (*models.CartItem, error)
	CreateItem(ctx context.Context, item *models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, cartID uint, designID string) (int64, error)
	ClearItems(ctx context.Context, cartID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// GetOrCreate returns the user's cart, creating an empty one on first use.
func (r *cartRepository) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID, Items: []models.CartItem{}}
		if createErr := r.db.WithContext(ctx).Create(&cart).Error; createErr != nil {
			return nil, createErr
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (r *cartRepository) FindItem(ctx context.Context, cartID uint, designID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND design_id = ?", cartID, designID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) CreateItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// DeleteItem removes the item and reports how many rows matched, so callers
// can distinguish a removal from a no-op.
func (r *cartRepository) DeleteItem(ctx context.Context, cartID uint, designID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND design_id = ?", cartID, designID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
