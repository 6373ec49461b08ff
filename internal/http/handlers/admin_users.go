package handlers

import (
	"net/http"

	"tokrecharge_api/internal/domain"
	"tokrecharge_api/internal/logger"

	"github.com/gin-gonic/gin"
)

// ListAdminUsers is super-admin only. PasswordHash never serializes, so the
// records are safe to return as is.
func (h *Handler) ListAdminUsers(c *gin.Context) {
	users, err := h.Store.GetAdminUsers(c.Request.Context())
	if err != nil {
		storeError(c, err, "admin users")
		return
	}
	c.JSON(http.StatusOK, users)
}

type createAdminUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
	IsActive *bool  `json:"isActive"`
}

func (h *Handler) CreateAdminUser(c *gin.Context) {
	var req createAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleAdmin
	}

	hash, err := h.Auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("password hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user, err := h.Store.CreateAdminUser(c.Request.Context(), domain.AdminUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     activeOrDefault(req.IsActive),
	})
	if err != nil {
		storeError(c, err, "admin user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateAdminUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch domain.AdminUserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Store.UpdateAdminUser(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, err, "admin user")
		return
	}
	c.JSON(http.StatusOK, user)
}
