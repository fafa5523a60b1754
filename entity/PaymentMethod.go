package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
	PaymentMethodBank   = "bank"
)

// PaymentMethod stores a sanitized, display-only saved payment method.
// Masked fields are populated only for the matching method type.
type PaymentMethod struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Method      string `gorm:"size:20;not null" json:"method"`
	MaskedLabel string `gorm:"size:120;not null" json:"maskedLabel"`
	IsDefault   bool   `gorm:"default:false" json:"isDefault"`

	PaypalEmail   string `gorm:"size:120" json:"paypalEmail,omitempty"`
	CardBrand     string `gorm:"size:40" json:"cardBrand,omitempty"`
	CardLast4     string `gorm:"size:4" json:"cardLast4,omitempty"`
	CardExpiry    string `gorm:"size:5" json:"cardExpiry,omitempty"`
	BankIbanLast4 string `gorm:"size:4" json:"bankIbanLast4,omitempty"`
}
