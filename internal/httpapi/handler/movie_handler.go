package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bimdb/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// RegisterRoutes registers movie browsing routes
func (h *MovieHandler) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.GET("/search", h.Search)
		movies.GET("/:movie_id", h.Get)
	}
}

// Search looks up movies by title against the metadata API
// GET /api/movies/search?query=
func (h *MovieHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	results, err := h.movieService.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "metadata source unavailable"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Get fetches one movie's metadata
// GET /api/movies/:movie_id
func (h *MovieHandler) Get(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	movie, err := h.movieService.Get(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "metadata source unavailable"})
		return
	}
	c.JSON(http.StatusOK, movie)
}
