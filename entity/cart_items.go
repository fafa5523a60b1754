package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_product;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_cart_product;not null" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}
