package dto

import (
	"time"

	"bimdb/internal/authz"
	"bimdb/internal/httpapi/models"
)

// CommentRequest for creating or editing a comment. TagIDs always
// carries the full tag set; an edit replaces the previous set.
type CommentRequest struct {
	Subject string  `json:"subject" binding:"max=100"`
	Text    string  `json:"text" binding:"required,min=1,max=10000"`
	TagIDs  []int64 `json:"tag_ids"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        int64         `json:"id"`
	MovieID   int64         `json:"movie_id"`
	Username  string        `json:"username"`
	Subject   string        `json:"subject"`
	Text      string        `json:"text"`
	Tags      []TagResponse `json:"tags"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	tags := make([]TagResponse, 0, len(comment.Tags))
	for _, t := range comment.Tags {
		if !t.Active {
			// Hidden tags stay attached in the database but are not
			// shown back to readers.
			continue
		}
		tags = append(tags, *FromModelToTagResponse(&t))
	}
	return &CommentResponse{
		ID:        comment.ID,
		MovieID:   comment.MovieID,
		Username:  comment.User.Username,
		Subject:   comment.Subject,
		Text:      comment.Text,
		Tags:      tags,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// MovieCommentsResponse is the public comment listing for one movie:
// visibility-filtered comments plus the tag-usage board.
type MovieCommentsResponse struct {
	MovieID  int64             `json:"movie_id"`
	Comments []CommentResponse `json:"comments"`
	TagStats []authz.TagCount  `json:"tag_stats"`
}
