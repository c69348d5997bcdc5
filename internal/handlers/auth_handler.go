package handlers

import (
	"net/http"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "A valid email and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdatePassword handles POST /admin/password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Current and new password are required")
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		failErr(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK())
}
