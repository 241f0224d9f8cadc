package entity

import (
	"gorm.io/gorm"
)

type Permission struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Roles []Role `gorm:"many2many:role_permissions;" json:"-"`
}
