package models

import "time"

// Comment is a user's single write-up for one movie. The composite
// unique index enforces at most one comment per (movie, author) pair.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_comments_movie_user"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_comments_movie_user"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations. Join rows in comment_tags follow the comment's
	// lifecycle (and a tag's, when a tag is hard-deleted).
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Tags  []Tag `json:"tags,omitempty" gorm:"many2many:comment_tags;constraint:OnDelete:CASCADE;"`
}

// OwnerID returns the id of the comment's author.
func (c Comment) OwnerID() string {
	return c.UserID
}

func (Comment) TableName() string {
	return "comments"
}
