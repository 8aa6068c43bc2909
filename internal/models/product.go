package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	Name        string                      `json:"name" gorm:"not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Price       float64                     `json:"price" gorm:"not null"`
	ImageURL    string                      `json:"image_url"`
	CategoryID  uint                        `json:"category_id" gorm:"index"`
	Allergens   datatypes.JSONSlice[string] `json:"allergens"`
	Visible     bool                        `json:"visible" gorm:"default:true"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `json:"deleted_at" gorm:"index"`
}
