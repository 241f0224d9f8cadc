package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	// Rating is 1..5, or nil for a text-only review. Unrated rows still
	// count toward a dish's review count.
	Rating *int   `json:"rating"`
	Body   string `json:"body"`
}
