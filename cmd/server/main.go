package main

import (
	"github.com/FelipeK57/comandapro-api/internal/handler"
	"github.com/FelipeK57/comandapro-api/internal/middleware"
	"github.com/FelipeK57/comandapro-api/internal/model"
	"github.com/FelipeK57/comandapro-api/internal/repository"
	"github.com/FelipeK57/comandapro-api/internal/service"
	"github.com/FelipeK57/comandapro-api/pkg/config"
	"github.com/FelipeK57/comandapro-api/pkg/database"
	"github.com/FelipeK57/comandapro-api/pkg/jwtutil"
	"github.com/FelipeK57/comandapro-api/pkg/logger"
	"github.com/FelipeK57/comandapro-api/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: "comandapro-api",
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting comandapro API...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Run migrations
	if err := database.MigrateModels(
		&model.Restaurant{},
		&model.User{},
		&model.Table{},
		&model.Product{},
		&model.Order{},
		&model.Subscription{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics()
	log.Info("Prometheus metrics initialized")

	// Wire repositories
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	transactor := repository.NewGormTransactor(db)

	// Wire services
	hasher := service.BcryptHasher{}
	authService := service.NewAuthService(userRepo, restaurantRepo, hasher, transactor, &cfg.JWT)
	userService := service.NewUserService(userRepo, restaurantRepo, hasher)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	tableService := service.NewTableService(tableRepo, restaurantRepo)
	productService := service.NewProductService(productRepo, restaurantRepo)
	orderService := service.NewOrderService(orderRepo, tableRepo, userRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, restaurantRepo)

	// Wire handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	tableHandler := handler.NewTableHandler(tableService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// API routes - all require authentication
	api := e.Group("/api/v1")
	api.Use(middleware.AuthMiddleware)

	// Staff management
	users := api.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.GET("/count", userHandler.CountUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.PUT("/:id/status", userHandler.ToggleUserStatus)
	users.DELETE("/:id", userHandler.DeleteUser)

	// Restaurant management (caller's own restaurant)
	restaurant := api.Group("/restaurant")
	restaurant.GET("", restaurantHandler.GetRestaurant)
	restaurant.PATCH("", restaurantHandler.UpdateRestaurant)
	restaurant.PUT("/status", restaurantHandler.ToggleRestaurantStatus)

	// Table management
	tables := api.Group("/tables")
	tables.POST("", tableHandler.CreateTable)
	tables.GET("", tableHandler.ListTables)
	tables.GET("/:id", tableHandler.GetTable)
	tables.PUT("/:id/status", tableHandler.UpdateTableStatus)
	tables.DELETE("/:id", tableHandler.DeleteTable)

	// Menu management
	products := api.Group("/products")
	products.POST("", productHandler.CreateProduct)
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	// Order management
	orders := api.Group("/orders")
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
	orders.PUT("/:id/totals", orderHandler.UpdateOrderTotals)
	orders.DELETE("/:id", orderHandler.DeleteOrder)

	// Subscription management
	subscription := api.Group("/subscription")
	subscription.POST("", subscriptionHandler.CreateSubscription)
	subscription.GET("", subscriptionHandler.GetSubscription)
	subscription.PUT("/status", subscriptionHandler.UpdateSubscriptionStatus)
	subscription.PUT("/renew", subscriptionHandler.RenewSubscription)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
