package repository

import (
	"bimdb/internal/httpapi/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations.
type TagRepository interface {
	Create(tag *models.Tag) error
	Update(tag *models.Tag) error
	SetActive(tagID int64, active bool) error
	Delete(tagID int64) error
	GetByID(tagID int64) (*models.Tag, error)
	List(activeOnly bool) ([]models.Tag, error)
	GetActiveByIDs(tagIDs []int64) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// SetActive flips the soft-delete flag. Inactive tags disappear from
// listings and stats but keep their associations.
func (r *tagRepository) SetActive(tagID int64, active bool) error {
	result := r.db.Model(&models.Tag{}).Where("id = ?", tagID).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-deletes the tag and its comment associations.
func (r *tagRepository) Delete(tagID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comment_tags WHERE tag_id = ?", tagID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Tag{}, tagID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *tagRepository) GetByID(tagID int64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", tagID).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) List(activeOnly bool) ([]models.Tag, error) {
	var tags []models.Tag
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetActiveByIDs loads the active tags among the given ids. Callers
// compare lengths to detect references to missing or hidden tags.
func (r *tagRepository) GetActiveByIDs(tagIDs []int64) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.Where("id IN ? AND active = ?", tagIDs, true).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
