package models

import (
	"time"
)

// Wishlist holds a user's saved designs. One wishlist per user, created
// lazily on first access.
type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WishlistItem is a single saved design. Adding an already-present design is
// a no-op, enforced by the composite unique index.
type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WishlistID uint      `gorm:"not null;uniqueIndex:idx_wishlist_items_list_design" json:"-"`
	DesignID   string    `gorm:"not null;uniqueIndex:idx_wishlist_items_list_design" json:"design_id"`
	DesignerID string    `json:"designer_id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Image      string    `json:"image"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`
}
