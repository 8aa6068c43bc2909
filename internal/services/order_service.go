package services

import (
	"errors"
	"fmt"
	"time"

	"food_order/internal/models"
	"food_order/internal/repository"

	"gorm.io/gorm"
)

// CartItem is one requested line item as it arrives from the client.
type CartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type OrderService interface {
	// PlaceOrder validates the cart and persists the order header plus one
	// snapshotted item row per cart entry as a single atomic unit. On any
	// failure nothing from the attempt persists.
	PlaceOrder(userID uint, items []CartItem, address, deliveryTime string) (uint, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrderDetail(id uint) (*models.Order, []models.OrderItem, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetAllOrders() ([]repository.OrderWithUser, error)
	UpdateStatus(id uint, status string) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	now           func() time.Time
	location      *time.Location
}

// NewOrderService wires the order workflow. The clock and location are
// injected so order_date always carries the target market's wall-clock time
// no matter what zone the server runs in.
func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, now func() time.Time, location *time.Location) OrderService {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		now:           now,
		location:      location,
	}
}

func (s *orderService) PlaceOrder(userID uint, items []CartItem, address, deliveryTime string) (uint, error) {
	// All input-shape checks happen before any write.
	if len(items) == 0 {
		return 0, fmt.Errorf("cart is empty: %w", ErrInvalidInput)
	}
	if address == "" || deliveryTime == "" {
		return 0, fmt.Errorf("address and delivery time are required: %w", ErrInvalidInput)
	}
	cart := make([]repository.CartLine, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return 0, fmt.Errorf("every item needs a product_id and a positive quantity: %w", ErrInvalidInput)
		}
		cart = append(cart, repository.CartLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order := &models.Order{
		UserID:       userID,
		Status:       string(models.OrderReceived),
		Address:      address,
		DeliveryTime: deliveryTime,
		OrderDate:    s.now().In(s.location),
	}
	if err := s.orderRepo.CreateWithItems(order, cart); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("a product in the cart no longer exists: %w", ErrNotFound)
		}
		return 0, err
	}
	return order.ID, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderDetail(id uint) (*models.Order, []models.OrderItem, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderItemRepo.GetByOrderID(id)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetAllOrders() ([]repository.OrderWithUser, error) {
	return s.orderRepo.GetAllWithUser()
}

// UpdateStatus sets any of the six recognized statuses on an existing order.
// No transition graph is enforced; re-setting the current status is a no-op
// success.
func (s *orderService) UpdateStatus(id uint, status string) error {
	if !models.ValidOrderStatus(status) {
		return ErrUnknownStatus
	}
	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}
	if order.Status == status {
		return nil
	}
	return s.orderRepo.UpdateStatus(id, status)
}
