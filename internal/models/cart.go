package models

import (
	"time"
)

// Cart holds a user's mutable line items. One cart per user, created lazily
// on first access.
type Cart struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	// Total is computed on read (sum of price * quantity), never stored.
	Total     float64   `gorm:"-" json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeTotal returns the sum of price * quantity over all lines.
func (c *Cart) ComputeTotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartItem is a single line item. The composite unique index on
// (cart_id, design_id) enforces the at-most-one-line-per-design invariant.
type CartItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CartID     uint    `gorm:"not null;uniqueIndex:idx_cart_items_cart_design" json:"-"`
	DesignID   string  `gorm:"not null;uniqueIndex:idx_cart_items_cart_design" json:"design_id"`
	DesignerID string  `json:"designer_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
}
