package delivery

import (
	"errors"
	"net/http"

	admindto "marketplace-backend/internal/admin/dto"
	"marketplace-backend/internal/admin/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	log          *zap.SugaredLogger
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		log:          log,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers()
	if err != nil {
		h.log.Errorw("admin list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req admindto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.adminUsecase.UpdateUserRole(c.Param("id"), req.Role); err != nil {
		h.respondError(c, err, "update user role failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user role updated successfully"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUsecase.DeleteUser(c.Param("id")); err != nil {
		h.respondError(c, err, "admin delete user failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminUsecase.DashboardStats()
	if err != nil {
		h.log.Errorw("dashboard stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Errorw(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
