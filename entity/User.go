package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:user" json:"role"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	// relations, preloaded only where needed
	ShippingProfile *ShippingProfile `gorm:"foreignKey:UserID" json:"-"`
	PaymentMethods  []PaymentMethod  `gorm:"foreignKey:UserID" json:"-"`
	Orders          []Order          `gorm:"foreignKey:UserID" json:"-"`
}
