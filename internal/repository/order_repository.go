package repository

import (
	"errors"
	"fmt"

	"food_order/internal/models"

	"gorm.io/gorm"
)

// CartLine is one validated cart entry handed to the transactional insert.
type CartLine struct {
	ProductID uint
	Quantity  int
}

// OrderWithUser is an order row joined with the placing user's username, the
// shape the admin listing serves.
type OrderWithUser struct {
	models.Order
	Username string `json:"username"`
}

type OrderRepository interface {
	// CreateWithItems persists the order header and one item row per cart
	// line in a single transaction. Product name and price are read inside
	// the same transaction and copied onto the item rows. Any failure,
	// including a cart line whose product no longer exists, rolls the whole
	// scope back; a missing product is reported wrapping
	// gorm.ErrRecordNotFound.
	CreateWithItems(order *models.Order, cart []CartLine) error
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetAllWithUser() ([]OrderWithUser, error)
	UpdateStatus(id uint, status string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(order *models.Order, cart []CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, line := range cart {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", line.ProductID, gorm.ErrRecordNotFound)
				}
				return err
			}
			item := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAllWithUser() ([]OrderWithUser, error) {
	var orders []OrderWithUser
	err := r.db.Model(&models.Order{}).
		Select("orders.*, users.username AS username").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Order("orders.order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}
