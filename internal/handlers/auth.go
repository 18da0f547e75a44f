// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/rishii-05/stroke-prediction-project/internal/models"
	"github.com/rishii-05/stroke-prediction-project/internal/service"

	"github.com/gin-gonic/gin"
	"log/slog"
)

type UserHandlers struct {
	s          *service.UserService
	jwtService *service.JWTService
}

func NewAuthHandlers(userService *service.UserService, jwtService *service.JWTService) *UserHandlers {
	return &UserHandlers{
		s:          userService,
		jwtService: jwtService,
	}
}

// POST /api/v1/auth/register
func (h *UserHandlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid registration request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authResponse, err := h.s.RegisterWithTokens(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Устанавливаем refresh token в HTTP-only cookie
	h.setRefreshTokenCookie(c, authResponse.RefreshToken)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"user":         authResponse.User,
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// POST /api/v1/auth/login
func (h *UserHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authResponse, err := h.s.LoginWithTokens(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// Устанавливаем refresh token в HTTP-only cookie
	h.setRefreshTokenCookie(c, authResponse.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         authResponse.User,
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *UserHandlers) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}

	authResponse, err := h.s.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, authResponse.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// POST /api/v1/auth/logout
func (h *UserHandlers) Logout(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GET /api/v1/auth/me
func (h *UserHandlers) GetProfile(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	currentUser := user.(*models.User)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":               currentUser.ID,
			"username":         currentUser.Username,
			"email":            currentUser.Email,
			"full_name":        currentUser.FullName,
			"theme_preference": currentUser.ThemePreference,
		},
	})
}

// PUT /api/v1/profile/theme
func (h *UserHandlers) UpdateTheme(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	if err := h.s.UpdateTheme(c.Request.Context(), userID, req.Theme); err != nil {
		slog.Error("Failed to update theme preference", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Theme updated", "theme": req.Theme})
}

// Установка refresh token в HTTP-only cookie
func (h *UserHandlers) setRefreshTokenCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(
		"refresh_token",
		refreshToken,
		7*24*60*60, // 7 дней
		"/",
		"",
		false, // secure (true для HTTPS)
		true,  // httpOnly
	)
}
