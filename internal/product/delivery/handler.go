package delivery

import (
	"errors"
	"net/http"

	productdto "marketplace-backend/internal/product/dto"
	"marketplace-backend/internal/product/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	log            *zap.SugaredLogger
}

func NewProductHandler(productUsecase usecase.ProductUsecase, log *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		log:            log,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productUsecase.List()
	if err != nil {
		h.log.Errorw("list products failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productUsecase.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "get product failed")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productUsecase.Create(&req)
	if err != nil {
		h.respondError(c, err, "create product failed")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productUsecase.Update(c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "update product failed")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productUsecase.Delete(c.Param("id")); err != nil {
		h.respondError(c, err, "delete product failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

func (h *ProductHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Errorw(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
