package repository

import (
	"food_order/internal/models"

	"gorm.io/gorm"
)

// ProductWithCategory is a product row joined with its category's name, the
// shape the public catalog listing serves.
type ProductWithCategory struct {
	models.Product
	Category string `json:"category"`
}

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByIDWithCategory(id uint) (*ProductWithCategory, error)
	GetVisibleWithCategory() ([]ProductWithCategory, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDWithCategory(id uint) (*ProductWithCategory, error) {
	var product ProductWithCategory
	err := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetVisibleWithCategory() ([]ProductWithCategory, error) {
	var products []ProductWithCategory
	err := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.visible = ?", true).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}
