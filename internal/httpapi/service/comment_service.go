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
	ErrCommentNotFound  = errors.New("comment not found")
	ErrDuplicateComment = errors.New("you already commented on this movie")
)

// CommentService enforces the one-comment-per-movie rule and the
// moderation policy around editing, deleting and listing comments.
type CommentService interface {
	Create(actor *models.User, movieID int64, req dto.CommentRequest) (*dto.CommentResponse, error)
	Update(actor *models.User, commentID int64, req dto.CommentRequest) (*dto.CommentResponse, error)
	Delete(actor *models.User, commentID int64) error
	ListByMovie(movieID int64) (*dto.MovieCommentsResponse, error)
	ListOwn(actor *models.User) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	movieRepo   repository.MovieRepository
	tagRepo     repository.TagRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	movieRepo repository.MovieRepository,
	tagRepo repository.TagRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		movieRepo:   movieRepo,
		tagRepo:     tagRepo,
	}
}

// resolveTags maps requested tag ids to active tags. Referencing a
// missing or hidden tag fails the whole request.
func (s *commentService) resolveTags(tagIDs []int64) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetActiveByIDs(tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

// Create posts the actor's single comment for a movie.
func (s *commentService) Create(actor *models.User, movieID int64, req dto.CommentRequest) (*dto.CommentResponse, error) {
	if !authz.Can(actor, authz.ActionCreateComment, nil) {
		return nil, ErrAccessUnauthorized
	}

	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if _, err := s.commentRepo.GetByMovieAndUser(movieID, actor.ID); err == nil {
		return nil, ErrDuplicateComment
	}

	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		MovieID: movieID,
		UserID:  actor.ID,
		Subject: req.Subject,
		Text:    req.Text,
	}
	if err := s.commentRepo.Create(comment, tags); err != nil {
		// The unique index backs up the lookup above under races. The
		// losing insert rolls back whole; the first comment stands.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateComment
		}
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// Update edits subject/text and replaces the tag set in one
// transaction. Admin or the comment's author.
func (s *commentService) Update(actor *models.User, commentID int64, req dto.CommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if !authz.Can(actor, authz.ActionEditComment, comment) {
		return nil, ErrAccessUnauthorized
	}

	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	comment.Subject = req.Subject
	comment.Text = req.Text
	if err := s.commentRepo.UpdateWithTags(comment, tags); err != nil {
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// Delete removes a comment. Any non-banned role, or the author
// themselves — even a banned author keeps that much.
func (s *commentService) Delete(actor *models.User, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if !authz.Can(actor, authz.ActionDeleteComment, comment) {
		return ErrAccessUnauthorized
	}
	return s.commentRepo.Delete(commentID)
}

// ListByMovie is the public listing: visibility-filtered comments plus
// the aggregated tag board.
func (s *commentService) ListByMovie(movieID int64) (*dto.MovieCommentsResponse, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByMovie(movieID)
	if err != nil {
		return nil, err
	}

	visible := authz.Visible(comments)
	responses := make([]dto.CommentResponse, 0, len(visible))
	for _, comment := range visible {
		responses = append(responses, *dto.FromModelToCommentResponse(&comment))
	}

	return &dto.MovieCommentsResponse{
		MovieID:  movieID,
		Comments: responses,
		TagStats: authz.TagStats(comments),
	}, nil
}

// ListOwn returns the actor's comments with no visibility filter:
// authors always see their own content, banned or not.
func (s *commentService) ListOwn(actor *models.User) ([]dto.CommentResponse, error) {
	if actor == nil {
		return nil, ErrAccessUnauthorized
	}

	comments, err := s.commentRepo.GetByUser(actor.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comment))
	}
	return responses, nil
}
