package main

import (
	"log"

	api "marketplace-backend/cmd/api"
	adminUsecase "marketplace-backend/internal/admin/usecase"
	authdomain "marketplace-backend/internal/auth/domain"
	authRepo "marketplace-backend/internal/auth/repository"
	authUsecase "marketplace-backend/internal/auth/usecase"
	productdomain "marketplace-backend/internal/product/domain"
	productRepo "marketplace-backend/internal/product/repository"
	productUsecase "marketplace-backend/internal/product/usecase"
	userUsecase "marketplace-backend/internal/user/usecase"
	"marketplace-backend/pkg/config"
	"marketplace-backend/pkg/database"
	"marketplace-backend/pkg/imgbb"
	"marketplace-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zlog, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &productdomain.Product{}); err != nil {
		zlog.Fatalw("failed to migrate database", "error", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	productRepository := productRepo.NewProductRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository)
	productUsecaseInstance := productUsecase.NewProductUsecase(productRepository)
	adminUsecaseInstance := adminUsecase.NewAdminUsecase(userRepository, productRepository)

	// External image host client (uploads disabled without an API key)
	imageClient := imgbb.NewClient(cfg.ImgBBAPIKey)
	if !imageClient.Enabled() {
		zlog.Warnw("IMGBB_API_KEY not set, image uploads disabled")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		userUsecaseInstance,
		productUsecaseInstance,
		adminUsecaseInstance,
		imageClient,
		cfg,
		zlog,
	)

	zlog.Infow("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		zlog.Fatalw("failed to start server", "error", err)
	}
}
