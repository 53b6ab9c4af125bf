package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/auth"
	"github.com/teamboard/backend/internal/models"
)

type UserHandler struct {
	users  UserRepository
	logger *zap.SugaredLogger
}

func NewUserHandler(users UserRepository, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// GetUserProfile returns a user's public profile
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"field": user.Field,
	})
}

// UpdateProfile changes the caller's name, phone and field. Empty fields are
// left as they are.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if field := strings.TrimSpace(input.Field); field != "" {
		user.Field = field
	}

	if err := h.users.Update(ctx, user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePassword replaces the caller's password after checking the current one.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if !auth.CheckPassword(user.Password, input.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password does not match"})
		return
	}

	hashed, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		respondError(c, h.logger, apperr.Internal("handlers.UpdatePassword", err))
		return
	}
	user.Password = hashed

	if err := h.users.Update(ctx, user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("Password changed", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
