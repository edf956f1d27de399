package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	SpecialTag  string  `json:"specialTag"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`

	// Public URL of the image in blob storage.
	Image string `json:"image"`
}
