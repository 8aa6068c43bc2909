package services

import (
	"testing"

	"food_order/internal/models"
	"food_order/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	products    []repository.ProductWithCategory
	invalidated int
}

func (f *fakeCache) GetProducts() ([]repository.ProductWithCategory, error) {
	return f.products, nil
}

func (f *fakeCache) SetProducts(products []repository.ProductWithCategory) error {
	f.products = products
	return nil
}

func (f *fakeCache) Invalidate() error {
	f.products = nil
	f.invalidated++
	return nil
}

func TestCreateProductWithCategoryName(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	svc := NewProductService(repository.NewProductRepository(db), categoryRepo, nil)

	product, err := svc.CreateProduct(ProductInput{
		Name:         "Margherita",
		Price:        9.50,
		CategoryName: "Pizza",
		Allergens:    []string{"glutén", "tej"},
	})
	require.NoError(t, err)
	require.NotZero(t, product.CategoryID)

	// Same name resolves to the same category, no duplicate row.
	again, err := svc.CreateProduct(ProductInput{
		Name:         "Sonkás",
		Price:        10.90,
		CategoryName: "Pizza",
	})
	require.NoError(t, err)
	assert.Equal(t, product.CategoryID, again.CategoryID)

	categories, err := categoryRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), nil)

	_, err := svc.CreateProduct(ProductInput{Price: 9.50})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProduct(ProductInput{Name: "Pizza"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProduct(ProductInput{Name: "Pizza", Price: 9.50, CategoryID: 999})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListVisibleFiltersHiddenProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), nil)

	_, err := svc.CreateProduct(ProductInput{Name: "Látható", Price: 5})
	require.NoError(t, err)
	hidden := false
	_, err = svc.CreateProduct(ProductInput{Name: "Rejtett", Price: 5, Visible: &hidden})
	require.NoError(t, err)

	products, err := svc.ListVisible()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Látható", products[0].Name)
}

func TestCatalogCacheReadThroughAndInvalidation(t *testing.T) {
	db := newTestDB(t)
	cache := &fakeCache{}
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), cache)

	product, err := svc.CreateProduct(ProductInput{Name: "Pizza", Price: 9.50})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated, "create must invalidate the cache")

	// First list warms the cache, second is served from it.
	first, err := svc.ListVisible()
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, cache.products)

	cache.products[0].Name = "cache-marker"
	second, err := svc.ListVisible()
	require.NoError(t, err)
	assert.Equal(t, "cache-marker", second[0].Name)

	// A price update busts the cache so the next read hits the database.
	_, err = svc.UpdateProduct(product.ID, ProductInput{Name: "Pizza", Price: 11.00})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.invalidated)

	third, err := svc.ListVisible()
	require.NoError(t, err)
	assert.Equal(t, "Pizza", third[0].Name)
	assert.Equal(t, 11.00, third[0].Price)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), nil)

	product, err := svc.CreateProduct(ProductInput{Name: "Pizza", Price: 9.50})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(product.ID))
	_, err = svc.GetProduct(product.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.DeleteProduct(product.ID), ErrNotFound)

	// Soft delete: the row stays for historical orders to point at.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
