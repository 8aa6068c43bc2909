package repository

import (
	"fmt"
	"testing"

	"food_order/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	first, err := repo.GetOrCreate("Pizza")
	require.NoError(t, err)
	second, err := repo.GetOrCreate("Pizza")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := repo.GetOrCreate("Üdítők")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetAllWithUserJoinsUsername(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Username: "kovacs", Email: "k@example.hu", Password: "x", Role: "user"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Order{
		UserID:       user.ID,
		Status:       string(models.OrderReceived),
		Address:      "Fő utca 1.",
		DeliveryTime: "18:30",
	}).Error)

	orders, err := NewOrderRepository(db).GetAllWithUser()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "kovacs", orders[0].Username)
	assert.Equal(t, user.ID, orders[0].UserID)
}
