package models

import "time"

// Movie is a local copy of the external metadata record. The ID is the
// metadata provider's numeric id, so there is no autoincrement here;
// rows are upserted whenever a movie page is fetched.
type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	PosterPath  string    `json:"poster_path"`
	Overview    string    `json:"overview" gorm:"type:text"`
	ReleaseDate string    `json:"release_date"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Movie) TableName() string {
	return "movies"
}
