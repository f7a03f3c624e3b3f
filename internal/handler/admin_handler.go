package handler

import (
	"errors"
	"net/http"

	"kedai/internal/domain"
	"kedai/internal/service"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authSvc *service.AuthService
}

func NewAdminHandler(authSvc *service.AuthService) *AdminHandler {
	return &AdminHandler{authSvc: authSvc}
}

// AdminLogin handles POST /api/admin/login.
func (h *AdminHandler) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	a, access, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCreds) {
			log.Error("admin login", "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if a.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"admin":        a,
		"access_token": access,
	})
}
