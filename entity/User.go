package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	// AuthID is the external identity-provider id when auth is delegated.
	AuthID   string `gorm:"index" json:"-"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash; empty when auth is external
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`
	Points   int64  `gorm:"not null;default:0" json:"points"`

	// Relations — preload only when needed
	Roles   []Role   `gorm:"many2many:user_roles;" json:"-"`
	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
