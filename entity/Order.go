package entity

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// ValidStatus checks enum membership only; transitions between valid
// statuses are unrestricted for admins.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	TotalCents    int64       `gorm:"not null" json:"totalCents"`
	DiscountCents int64       `gorm:"not null;default:0" json:"discountCents"`
	Status        OrderStatus `gorm:"not null;default:pending" json:"status"`
	PointsEarned  int64       `gorm:"not null;default:0" json:"pointsEarned"`

	Items []OrderItem `json:"items"`
}
