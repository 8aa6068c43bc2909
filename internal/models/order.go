package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	Status       string         `json:"status" gorm:"not null;default:'Beérkezett'"`
	Address      string         `json:"address" gorm:"not null"`
	DeliveryTime string         `json:"delivery_time" gorm:"not null"`
	OrderDate    time.Time      `json:"order_date" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

// Status labels are the business literals the storefront displays; they are
// stored verbatim.
const (
	OrderReceived   OrderStatus = "Beérkezett"
	OrderInProgress OrderStatus = "Folyamatban"
	OrderPaid       OrderStatus = "Kifizetve"
	OrderDelivered  OrderStatus = "Kiszállítva"
	OrderCancelled  OrderStatus = "Törölve"
	OrderOnHold     OrderStatus = "Félretéve"
)

var orderStatuses = map[OrderStatus]bool{
	OrderReceived:   true,
	OrderInProgress: true,
	OrderPaid:       true,
	OrderDelivered:  true,
	OrderCancelled:  true,
	OrderOnHold:     true,
}

// ValidOrderStatus reports whether s is one of the six recognized labels.
func ValidOrderStatus(s string) bool {
	return orderStatuses[OrderStatus(s)]
}
