package repository

import (
	"food_order/internal/models"

	"gorm.io/gorm"
)

// OrderItemRepository is read-only: items are only ever written through
// OrderRepository.CreateWithItems.
type OrderItemRepository interface {
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	CountByOrderID(orderID uint) (int64, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) CountByOrderID(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
