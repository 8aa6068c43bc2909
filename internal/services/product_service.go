package services

import (
	"errors"
	"fmt"
	"log"

	"food_order/internal/models"
	"food_order/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	ImageURL     string   `json:"image_url"`
	CategoryID   uint     `json:"category_id"`
	CategoryName string   `json:"category"`
	Allergens    []string `json:"allergens"`
	Visible      *bool    `json:"visible"`
}

// CatalogCache caches the public product listing. A nil cache disables
// caching; cache faults degrade to direct reads.
type CatalogCache interface {
	GetProducts() ([]repository.ProductWithCategory, error)
	SetProducts(products []repository.ProductWithCategory) error
	Invalidate() error
}

type ProductService interface {
	ListVisible() ([]repository.ProductWithCategory, error)
	GetProduct(id uint) (*repository.ProductWithCategory, error)
	CreateProduct(input ProductInput) (*models.Product, error)
	UpdateProduct(id uint, input ProductInput) (*models.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        CatalogCache
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cache CatalogCache) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// ListVisible serves the public catalog, read-through the cache when warm.
func (s *productService) ListVisible() ([]repository.ProductWithCategory, error) {
	if s.cache != nil {
		if products, err := s.cache.GetProducts(); err == nil && products != nil {
			return products, nil
		}
	}
	products, err := s.productRepo.GetVisibleWithCategory()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetProducts(products); err != nil {
			log.Printf("catalog cache write failed: %v", err)
		}
	}
	return products, nil
}

func (s *productService) GetProduct(id uint) (*repository.ProductWithCategory, error) {
	product, err := s.productRepo.GetByIDWithCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.Price <= 0 {
		return nil, fmt.Errorf("name and a positive price are required: %w", ErrInvalidInput)
	}
	categoryID, err := s.resolveCategory(input)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		CategoryID:  categoryID,
		Allergens:   datatypes.NewJSONSlice(input.Allergens),
		Visible:     true,
	}
	if input.Visible != nil {
		product.Visible = *input.Visible
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.Price <= 0 {
		return nil, fmt.Errorf("name and a positive price are required: %w", ErrInvalidInput)
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	categoryID, err := s.resolveCategory(input)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.CategoryID = categoryID
	product.Allergens = datatypes.NewJSONSlice(input.Allergens)
	if input.Visible != nil {
		product.Visible = *input.Visible
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// resolveCategory accepts either an existing category id or a category name
// that gets created on first use.
func (s *productService) resolveCategory(input ProductInput) (uint, error) {
	if input.CategoryID != 0 {
		if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("category %d does not exist: %w", input.CategoryID, ErrInvalidInput)
			}
			return 0, err
		}
		return input.CategoryID, nil
	}
	if input.CategoryName != "" {
		category, err := s.categoryRepo.GetOrCreate(input.CategoryName)
		if err != nil {
			return 0, err
		}
		return category.ID, nil
	}
	return 0, nil
}

func (s *productService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}
