package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is soft-deleted via IsActive so historical order items keep
// a valid reference.
type Product struct {
	gorm.Model
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Images      datatypes.JSON `json:"images,omitempty"`
	Stock       int            `gorm:"default:0" json:"stock"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}
