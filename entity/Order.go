package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// nullable so orders survive user deletion
	UserID *uint `gorm:"index" json:"userId"`
	User   *User `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Total  float64     `gorm:"not null" json:"total"`
	Status OrderStatus `gorm:"size:20;not null;default:pending" json:"status"`

	ShippingAddress string `json:"shippingAddress"`
	Notes           string `gorm:"type:text" json:"notes"`

	// free-form checkout form snapshot for draft orders; schema follows
	// whatever the frontend currently sends
	CheckoutData datatypes.JSON `json:"checkoutData,omitempty"`

	Items     []OrderItem     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Documents []OrderDocument `json:"documents,omitempty"`
}
