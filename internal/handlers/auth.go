package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/auth"
	"github.com/teamboard/backend/internal/models"
)

type AuthHandler struct {
	users  UserRepository
	tokens *auth.Tokens
	logger *zap.SugaredLogger
}

func NewAuthHandler(users UserRepository, tokens *auth.Tokens, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		respondError(c, h.logger, apperr.Internal("handlers.Register", err))
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Phone:    input.Phone,
		Field:    input.Field,
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Generate JWT token AFTER creating user
	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, h.logger, apperr.Internal("handlers.Register", err))
		return
	}

	h.logger.Infow("User registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "User registered successfully",
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if apperr.KindOf(err) == apperr.KindNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Verify password
	if !auth.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(*user)
	if err != nil {
		respondError(c, h.logger, apperr.Internal("handlers.Login", err))
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    *user,
		Message: "Login successful",
	})
}

// GetMe returns the current authenticated user
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
