package dto

import "bimdb/internal/httpapi/models"

// TagRequest for creating or editing a tag
type TagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// SetTagActiveRequest toggles the soft-delete flag
type SetTagActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// TagResponse for returning tag information
type TagResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	CreatedBy   string `json:"created_by,omitempty"`
}

// FromModelToTagResponse converts a Tag model to TagResponse DTO
func FromModelToTagResponse(tag *models.Tag) *TagResponse {
	return &TagResponse{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
		Active:      tag.Active,
		CreatedBy:   tag.CreatedBy,
	}
}
