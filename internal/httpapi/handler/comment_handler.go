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

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	movieComments := router.Group("/movies/:movie_id/comments")
	{
		// Public listing: visibility-filtered, with tag stats
		movieComments.GET("", h.ListByMovie)

		// One comment per user per movie
		movieComments.POST("", middleware.RequireAuth(), h.Create)
	}

	comments := router.Group("/comments")
	{
		comments.GET("/me", middleware.RequireAuth(), h.ListMine)
		comments.PUT("/:id", middleware.RequireAuth(), h.Update)
		comments.DELETE("/:id", middleware.RequireAuth(), h.Delete)
	}
}

// Create posts the caller's comment for a movie
// POST /api/movies/:movie_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(middleware.CurrentUser(c), movieID, req)
	if err != nil {
		h.writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update edits a comment and replaces its tag set
// PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(middleware.CurrentUser(c), commentID, req)
	if err != nil {
		h.writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete removes a comment
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(middleware.CurrentUser(c), commentID); err != nil {
		h.writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// ListByMovie returns the public comment listing for a movie
// GET /api/movies/:movie_id/comments
func (h *CommentHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	listing, err := h.commentService.ListByMovie(movieID)
	if err != nil {
		h.writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// ListMine returns the caller's own comments, unfiltered
// GET /api/comments/me
func (h *CommentHandler) ListMine(c *gin.Context) {
	comments, err := h.commentService.ListOwn(middleware.CurrentUser(c))
	if err != nil {
		h.writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) writeCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccessUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "access unauthorized"})
	case errors.Is(err, service.ErrDuplicateComment):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMovieNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
