package entity

import (
	"gorm.io/gorm"
)

// Role and Permission back the seeded RBAC tables. Route authorization
// itself runs off User.IsAdmin; these exist for the seed command and
// future policy work.
type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions"`
	Users       []User       `gorm:"many2many:user_roles;" json:"-"`
}
