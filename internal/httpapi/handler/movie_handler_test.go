package handler

import (
	"errors"
	"net/http"
	"testing"

	"bimdb/internal/httpapi/dto"
	"bimdb/internal/httpapi/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMovieHandler_Search(t *testing.T) {
	movieService := new(MockMovieService)
	r, api := newTestRouter(nil)
	NewMovieHandler(movieService).RegisterRoutes(api)

	movieService.On("Search", mock.Anything, "fight club").Return([]dto.MovieResponse{
		{ID: 550, Title: "Fight Club"},
	}, nil)

	w := performJSON(r, http.MethodGet, "/api/movies/search?query=fight+club", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var results []dto.MovieResponse
	require.NoError(t, decodeBody(w, &results))
	assert.Len(t, results, 1)
}

func TestMovieHandler_SearchMissingQuery(t *testing.T) {
	movieService := new(MockMovieService)
	r, api := newTestRouter(nil)
	NewMovieHandler(movieService).RegisterRoutes(api)

	w := performJSON(r, http.MethodGet, "/api/movies/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	movieService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestMovieHandler_Get(t *testing.T) {
	movieService := new(MockMovieService)
	r, api := newTestRouter(nil)
	NewMovieHandler(movieService).RegisterRoutes(api)

	movieService.On("Get", mock.Anything, int64(550)).
		Return(&dto.MovieResponse{ID: 550, Title: "Fight Club"}, nil)

	w := performJSON(r, http.MethodGet, "/api/movies/550", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var movie dto.MovieResponse
	require.NoError(t, decodeBody(w, &movie))
	assert.Equal(t, "Fight Club", movie.Title)
}

func TestMovieHandler_GetNotFound(t *testing.T) {
	movieService := new(MockMovieService)
	r, api := newTestRouter(nil)
	NewMovieHandler(movieService).RegisterRoutes(api)

	movieService.On("Get", mock.Anything, int64(999)).Return(nil, service.ErrMovieNotFound)

	w := performJSON(r, http.MethodGet, "/api/movies/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_GetProviderDown(t *testing.T) {
	movieService := new(MockMovieService)
	r, api := newTestRouter(nil)
	NewMovieHandler(movieService).RegisterRoutes(api)

	movieService.On("Get", mock.Anything, int64(550)).
		Return(nil, errors.New("connection refused"))

	w := performJSON(r, http.MethodGet, "/api/movies/550", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
