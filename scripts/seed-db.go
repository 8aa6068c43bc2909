package main

import (
	"fmt"
	"log"

	"food_order/internal/config"
	"food_order/internal/database"
	"food_order/internal/models"
	"food_order/internal/repository"
	"food_order/internal/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func main() {
	fmt.Println("Seeding database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Create default admin user if missing
	adminEmail := "admin@foodorder.local"
	if _, err := userRepo.GetByEmail(adminEmail); err == nil {
		fmt.Println("Admin user already exists")
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte("Admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash admin password:", err)
		}
		admin := &models.User{
			Username: "admin",
			Email:    adminEmail,
			Password: string(hashed),
			Role:     string(models.RoleAdmin),
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal("Failed to create admin user:", err)
		}
		fmt.Println("Admin user created")
		fmt.Println("Email:", adminEmail)
		fmt.Println("Password: Admin123")
	}

	// Starter catalog
	pizza, err := categoryRepo.GetOrCreate("Pizza")
	if err != nil {
		log.Fatal("Failed to seed categories:", err)
	}
	drinks, err := categoryRepo.GetOrCreate("Üdítők")
	if err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	productService := services.NewProductService(productRepo, categoryRepo, nil)
	if items, err := productService.ListVisible(); err == nil && len(items) > 0 {
		fmt.Println("Catalog already seeded")
		return
	}

	starters := []models.Product{
		{
			Name:        "Margherita",
			Description: "Paradicsomos alap, mozzarella, bazsalikom",
			Price:       9.50,
			CategoryID:  pizza.ID,
			Allergens:   datatypes.NewJSONSlice([]string{"glutén", "tej"}),
			Visible:     true,
		},
		{
			Name:        "Sonkás pizza",
			Description: "Paradicsomos alap, mozzarella, sonka",
			Price:       10.90,
			CategoryID:  pizza.ID,
			Allergens:   datatypes.NewJSONSlice([]string{"glutén", "tej"}),
			Visible:     true,
		},
		{
			Name:       "Kóla 0.5l",
			Price:      2.50,
			CategoryID: drinks.ID,
			Visible:    true,
		},
	}
	for i := range starters {
		if err := productRepo.Create(&starters[i]); err != nil {
			log.Fatal("Failed to seed products:", err)
		}
	}

	fmt.Println("Database seeding completed successfully!")
}
