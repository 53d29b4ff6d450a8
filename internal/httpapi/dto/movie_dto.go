package dto

import "bimdb/internal/httpapi/models"

// MovieResponse for returning movie metadata
type MovieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path,omitempty"`
	Overview    string `json:"overview,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}

// FromModelToMovieResponse converts a Movie model to MovieResponse DTO
func FromModelToMovieResponse(movie *models.Movie) *MovieResponse {
	return &MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		PosterPath:  movie.PosterPath,
		Overview:    movie.Overview,
		ReleaseDate: movie.ReleaseDate,
	}
}
