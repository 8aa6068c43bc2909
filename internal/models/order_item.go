package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem rows are immutable once written. ProductName and Price are
// snapshots taken at order time so later catalog edits cannot change what a
// historical order says was bought and for how much. ProductID is kept for
// reference only.
type OrderItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OrderID     uint           `json:"order_id" gorm:"not null;index"`
	ProductID   uint           `json:"product_id"`
	ProductName string         `json:"product_name" gorm:"not null"`
	Price       float64        `json:"price" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
