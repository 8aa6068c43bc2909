package main

import (
	"log"
	"time"

	"food_order/internal/auth"
	"food_order/internal/cache"
	"food_order/internal/config"
	"food_order/internal/database"
	"food_order/internal/handlers"
	"food_order/internal/repository"
	"food_order/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis-backed catalog cache
	catalogCache, err := cache.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Orders carry the target market's wall-clock time, not the server zone
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo, catalogCache)
	productService := services.NewProductService(productRepo, categoryRepo, catalogCache)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, time.Now, location)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := handlers.SetupRouter(authHandler, userHandler, productHandler, categoryHandler, orderHandler, tokens)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
