package entity

import (
	"time"
)

// CartItem is one cart line. One row per (user, dish); repeated adds
// merge into the existing row. No soft delete: lines are transient, and
// a tombstone would keep colliding with the unique index when the same
// dish is added again after a remove or checkout.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_dish" json:"userId"`
	User   User `json:"-"`

	DishID uint `gorm:"uniqueIndex:idx_cart_user_dish" json:"dishId"`
	Dish   Dish `json:"dish"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}
