package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bimdb/internal/httpapi/dto"
	"bimdb/internal/httpapi/middleware"
	"bimdb/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// RegisterRoutes registers tag routes. Mutations only need a login
// here; the service decides per record, since a tag's creator keeps
// edit rights even without a mod role.
func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	{
		tags.GET("", h.List)
		tags.POST("", middleware.RequireAuth(), h.Create)
		tags.PUT("/:id", middleware.RequireAuth(), h.Update)
		tags.PUT("/:id/active", middleware.RequireAuth(), h.SetActive)
		tags.DELETE("/:id", middleware.RequireAuth(), h.Delete)
	}
}

// List returns tags; hidden tags are included only for mods and admins
// GET /api/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List(middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// Create adds a tag to the vocabulary
// POST /api/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Create(middleware.CurrentUser(c), req.Name, req.Description)
	if err != nil {
		h.writeTagError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// Update renames or re-describes a tag
// PUT /api/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	tagID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag ID"})
		return
	}

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Update(middleware.CurrentUser(c), tagID, req.Name, req.Description)
	if err != nil {
		h.writeTagError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// SetActive hides or restores a tag
// PUT /api/tags/:id/active
func (h *TagHandler) SetActive(c *gin.Context) {
	tagID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag ID"})
		return
	}

	var req dto.SetTagActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.SetActive(middleware.CurrentUser(c), tagID, *req.Active)
	if err != nil {
		h.writeTagError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Delete hard-deletes a tag and its associations
// DELETE /api/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	tagID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag ID"})
		return
	}

	if err := h.tagService.Delete(middleware.CurrentUser(c), tagID); err != nil {
		h.writeTagError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}

func (h *TagHandler) writeTagError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccessUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "access unauthorized"})
	case errors.Is(err, service.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTagNameInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
