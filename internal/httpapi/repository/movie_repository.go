package repository

import (
	"bimdb/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieRepository defines the interface for the local movie cache.
type MovieRepository interface {
	Upsert(movie *models.Movie) error
	GetByID(id int64) (*models.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// Upsert inserts the movie or refreshes its metadata columns. Movies
// use the external provider's id, so the same movie always lands on
// the same row.
func (r *movieRepository) Upsert(movie *models.Movie) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "poster_path", "overview", "release_date", "updated_at"}),
	}).Create(movie).Error
}

func (r *movieRepository) GetByID(id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}
