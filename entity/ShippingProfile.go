package entity

import (
	"gorm.io/gorm"
)

// ShippingProfile is the single saved shipping/billing record per user.
type ShippingProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Phone           string `gorm:"size:40" json:"phone"`
	ShippingAddress string `json:"shippingAddress"`
	BillingAddress  string `json:"billingAddress"`
	IsDefault       bool   `gorm:"default:true" json:"isDefault"`
}
