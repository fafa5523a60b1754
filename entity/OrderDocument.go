package entity

import (
	"gorm.io/gorm"
)

const (
	DocumentTypeInvoice = "invoice"
	DocumentTypeSummary = "summary"
)

func ValidDocumentType(t string) bool {
	return t == DocumentTypeInvoice || t == DocumentTypeSummary
}

// OrderDocument holds a generated PDF as base64. DataBase64 is heavy and
// must be selected explicitly; list queries leave it out.
type OrderDocument struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	Type       string `gorm:"size:20;not null" json:"type"`
	FileName   string `gorm:"size:160;not null" json:"fileName"`
	MimeType   string `gorm:"size:80;not null;default:application/pdf" json:"mimeType"`
	DataBase64 string `gorm:"type:text" json:"dataBase64,omitempty"`
}
