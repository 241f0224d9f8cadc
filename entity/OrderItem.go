package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"` // preload only when the dish name is needed

	Quantity int `gorm:"not null" json:"quantity"`
	// UnitPriceCents snapshots the dish price at order time so later
	// price edits never alter historical orders.
	UnitPriceCents int64 `gorm:"not null" json:"unitPriceCents"`
}
