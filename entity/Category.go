package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"imageUrl"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;" json:"products,omitempty"`
}
