package repository

import (
	"bimdb/internal/httpapi/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(comment *models.Comment, tags []models.Tag) error
	UpdateWithTags(comment *models.Comment, tags []models.Tag) error
	Delete(commentID int64) error
	GetByID(commentID int64) (*models.Comment, error)
	GetByMovie(movieID int64) ([]models.Comment, error)
	GetByMovieAndUser(movieID int64, userID string) (*models.Comment, error)
	GetByUser(userID string) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and its tag associations in one
// transaction. The (movie_id, user_id) unique index rejects a second
// comment for the same pair; with TranslateError enabled that surfaces
// as gorm.ErrDuplicatedKey and nothing is written.
func (r *commentRepository) Create(comment *models.Comment, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(comment).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Model(comment).Association("Tags").Replace(tags)
	})
}

// UpdateWithTags saves subject/text and swaps the whole tag set
// atomically. Either the row update and the association replace both
// commit, or the edit rolls back as one failure.
func (r *commentRepository) UpdateWithTags(comment *models.Comment, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(comment).Select("subject", "text").Updates(map[string]any{
			"subject": comment.Subject,
			"text":    comment.Text,
		}).Error; err != nil {
			return err
		}
		return tx.Model(comment).Association("Tags").Replace(tags)
	})
}

// Delete removes the comment and cascades its tag associations.
func (r *commentRepository) Delete(commentID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comment_tags WHERE comment_id = ?", commentID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Comment{}, commentID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		Preload("Tags").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByMovie returns every comment on the movie, newest first, with
// authors and tags preloaded. Visibility filtering happens above this
// layer; the repository hands back the raw snapshot.
func (r *commentRepository) GetByMovie(movieID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("movie_id = ?", movieID).
		Preload("User").
		Preload("Tags").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetByMovieAndUser(movieID int64, userID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("movie_id = ? AND user_id = ?", movieID, userID).
		Preload("User").
		Preload("Tags").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetByUser(userID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Preload("Tags").
		Preload("Movie").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
