package api

import (
	admindelivery "marketplace-backend/internal/admin/delivery"
	adminUsecase "marketplace-backend/internal/admin/usecase"
	authdelivery "marketplace-backend/internal/auth/delivery"
	authUsecase "marketplace-backend/internal/auth/usecase"
	imagedelivery "marketplace-backend/internal/image/delivery"
	productdelivery "marketplace-backend/internal/product/delivery"
	productUsecase "marketplace-backend/internal/product/usecase"
	userdelivery "marketplace-backend/internal/user/delivery"
	userUsecase "marketplace-backend/internal/user/usecase"
	"marketplace-backend/pkg/config"
	"marketplace-backend/pkg/imgbb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	userUsecase    userUsecase.UserUsecase
	productUsecase productUsecase.ProductUsecase
	adminUsecase   adminUsecase.AdminUsecase
	imageClient    *imgbb.Client
	config         *config.Config
	log            *zap.SugaredLogger
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	userUc userUsecase.UserUsecase,
	productUc productUsecase.ProductUsecase,
	adminUc adminUsecase.AdminUsecase,
	imageClient *imgbb.Client,
	cfg *config.Config,
	log *zap.SugaredLogger,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		userUsecase:    userUc,
		productUsecase: productUc,
		adminUsecase:   adminUc,
		imageClient:    imageClient,
		config:         cfg,
		log:            log,
	}
}

func (h *Handler) Start(addr string) error {
	if !h.config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.log))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	authHandler := authdelivery.NewAuthHandler(h.authUsecase, h.log)
	userHandler := userdelivery.NewUserHandler(h.userUsecase, h.log)
	productHandler := productdelivery.NewProductHandler(h.productUsecase, h.log)
	adminHandler := admindelivery.NewAdminHandler(h.adminUsecase, h.log)
	imageHandler := imagedelivery.NewImageHandler(h.imageClient, h.log)

	SetupRoutes(r, h.authUsecase, authHandler, userHandler, productHandler, adminHandler, imageHandler)

	return r.Run(addr)
}
