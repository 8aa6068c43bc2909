package services

import (
	"errors"
	"fmt"
	"log"

	"food_order/internal/models"
	"food_order/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetAllCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(id uint, name string) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        CatalogCache
}

func NewCategoryService(categoryRepo repository.CategoryRepository, cache CatalogCache) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, cache: cache}
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}
	category, err := s.categoryRepo.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	s.invalidate()
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *categoryService) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}
