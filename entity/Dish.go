package entity

import (
	"gorm.io/gorm"
)

// Menu sections, rendered in this order.
const (
	SectionBreakfast     = "Breakfast"
	SectionLunch         = "Lunch"
	SectionDinner        = "Dinner"
	SectionDrinks        = "Drinks"
	SectionDailySpecials = "Daily Specials"
	SectionOther         = "Other"
)

var SectionOrder = []string{
	SectionBreakfast, SectionLunch, SectionDinner,
	SectionDrinks, SectionDailySpecials, SectionOther,
}

func ValidSection(s string) bool {
	for _, v := range SectionOrder {
		if v == s {
			return true
		}
	}
	return false
}

type Dish struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"` // unique case-insensitive, checked in repository
	PriceCents  int64  `gorm:"not null" json:"priceCents"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Section     string `gorm:"not null;default:Other" json:"section"`

	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`
}
