package handler

import (
	"errors"
	"net/http"

	"bimdb/internal/authz"
	"bimdb/internal/httpapi/dto"
	"bimdb/internal/httpapi/middleware"
	"bimdb/internal/httpapi/models"
	"bimdb/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the admin user-management routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin/users")
	{
		admin.GET("", middleware.RequireCan(authz.ActionListUsers), h.List)
		admin.PUT("/:id/role", middleware.RequireCan(authz.ActionSetUserRole), h.SetRole)
	}
}

// List returns all accounts for the moderation view
// GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(middleware.CurrentUser(c))
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetRole changes a user's role, including banning and shadow-banning
// PUT /api/admin/users/:id/role
func (h *UserHandler) SetRole(c *gin.Context) {
	targetID := c.Param("id")

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.SetRole(middleware.CurrentUser(c), targetID, models.Role(req.Role))
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccessUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "access unauthorized"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
