package service

import (
	"errors"

	"bimdb/internal/authz"
	"bimdb/internal/httpapi/dto"
	"bimdb/internal/httpapi/models"
	"bimdb/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrTagNameInUse = errors.New("tag name already in use")
)

// TagService manages the moderation-curated tag vocabulary.
type TagService interface {
	List(actor *models.User) ([]dto.TagResponse, error)
	Create(actor *models.User, name, description string) (*dto.TagResponse, error)
	Update(actor *models.User, tagID int64, name, description string) (*dto.TagResponse, error)
	SetActive(actor *models.User, tagID int64, active bool) (*dto.TagResponse, error)
	Delete(actor *models.User, tagID int64) error
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// List returns active tags. Callers allowed on the tag-management
// pages also see hidden tags.
func (s *tagService) List(actor *models.User) ([]dto.TagResponse, error) {
	activeOnly := !authz.Can(actor, authz.ActionManageTags, nil)
	tags, err := s.tagRepo.List(activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, *dto.FromModelToTagResponse(&tag))
	}
	return responses, nil
}

// Create adds a tag to the vocabulary. Mod privilege or better.
func (s *tagService) Create(actor *models.User, name, description string) (*dto.TagResponse, error) {
	if !authz.Can(actor, authz.ActionCreateTag, nil) {
		return nil, ErrAccessUnauthorized
	}

	tag := &models.Tag{
		Name:        name,
		Description: description,
		Active:      true,
		CreatedBy:   actor.ID,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTagNameInUse
		}
		return nil, err
	}
	return dto.FromModelToTagResponse(tag), nil
}

// Update renames or re-describes a tag. Admin or the tag's creator.
func (s *tagService) Update(actor *models.User, tagID int64, name, description string) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	if !authz.Can(actor, authz.ActionEditTag, tag) {
		return nil, ErrAccessUnauthorized
	}

	tag.Name = name
	tag.Description = description
	if err := s.tagRepo.Update(tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTagNameInUse
		}
		return nil, err
	}
	return dto.FromModelToTagResponse(tag), nil
}

// SetActive hides or restores a tag without touching its associations.
func (s *tagService) SetActive(actor *models.User, tagID int64, active bool) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	if !authz.Can(actor, authz.ActionSetTagActive, tag) {
		return nil, ErrAccessUnauthorized
	}

	if err := s.tagRepo.SetActive(tagID, active); err != nil {
		return nil, err
	}
	tag.Active = active
	return dto.FromModelToTagResponse(tag), nil
}

// Delete hard-deletes a tag and its comment associations.
func (s *tagService) Delete(actor *models.User, tagID int64) error {
	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	if !authz.Can(actor, authz.ActionDeleteTag, tag) {
		return ErrAccessUnauthorized
	}
	return s.tagRepo.Delete(tagID)
}
