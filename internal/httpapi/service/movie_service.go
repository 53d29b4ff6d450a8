package service

import (
	"context"
	"errors"

	"bimdb/internal/httpapi/dto"
	"bimdb/internal/httpapi/models"
	"bimdb/internal/httpapi/repository"
	"bimdb/internal/tmdb"
)

// MetadataClient is the slice of the external metadata API this service
// needs. *tmdb.Client satisfies it.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.Movie, error)
	GetMovie(ctx context.Context, id int64) (*tmdb.Movie, error)
}

// MovieService fronts the external metadata source and keeps a local
// copy of every movie that has been viewed, so comments always have a
// referent row.
type MovieService interface {
	Search(ctx context.Context, query string) ([]dto.MovieResponse, error)
	Get(ctx context.Context, id int64) (*dto.MovieResponse, error)
}

type movieService struct {
	metadata  MetadataClient
	movieRepo repository.MovieRepository
}

func NewMovieService(metadata MetadataClient, movieRepo repository.MovieRepository) MovieService {
	return &movieService{
		metadata:  metadata,
		movieRepo: movieRepo,
	}
}

func (s *movieService) Search(ctx context.Context, query string) ([]dto.MovieResponse, error) {
	results, err := s.metadata.SearchMovies(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MovieResponse, 0, len(results))
	for _, m := range results {
		responses = append(responses, dto.MovieResponse{
			ID:          m.ID,
			Title:       m.Title,
			PosterPath:  m.PosterPath,
			Overview:    m.Overview,
			ReleaseDate: m.ReleaseDate,
		})
	}
	return responses, nil
}

// Get fetches one movie from the metadata source and upserts the local
// row used as the comments' foreign key.
func (s *movieService) Get(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	fetched, err := s.metadata.GetMovie(ctx, id)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	movie := &models.Movie{
		ID:          fetched.ID,
		Title:       fetched.Title,
		PosterPath:  fetched.PosterPath,
		Overview:    fetched.Overview,
		ReleaseDate: fetched.ReleaseDate,
	}
	if err := s.movieRepo.Upsert(movie); err != nil {
		return nil, err
	}
	return dto.FromModelToMovieResponse(movie), nil
}
