package delivery

import (
	"errors"
	"net/http"

	userdto "marketplace-backend/internal/user/dto"
	"marketplace-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	log         *zap.SugaredLogger
}

func NewUserHandler(userUsecase usecase.UserUsecase, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		log:         log,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUsecase.List()
	if err != nil {
		h.log.Errorw("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUsecase.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "get user failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req userdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Update(c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "update user failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated successfully", "user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUsecase.Delete(c.Param("id")); err != nil {
		h.respondError(c, err, "delete user failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *UserHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Errorw(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
