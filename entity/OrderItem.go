package entity

import (
	"gorm.io/gorm"
)

// OrderItem freezes the unit price at order time; later product price
// changes never touch it.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"product,omitempty"`

	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
}
