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
	ErrUserNotFound = errors.New("user not found")
	ErrUnknownRole  = errors.New("unknown role")
)

// UserService covers the admin moderation views over accounts.
type UserService interface {
	List(actor *models.User) ([]dto.UserResponse, error)
	SetRole(actor *models.User, targetID string, role models.Role) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(actor *models.User) ([]dto.UserResponse, error) {
	if !authz.Can(actor, authz.ActionListUsers, nil) {
		return nil, ErrAccessUnauthorized
	}

	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, *dto.FromModelToUserResponse(&user))
	}
	return responses, nil
}

// SetRole changes another user's role. Admin only. The target's
// existing comments are untouched; a ban takes effect purely through
// the visibility filter on subsequent reads.
func (s *userService) SetRole(actor *models.User, targetID string, role models.Role) (*dto.UserResponse, error) {
	if !authz.Can(actor, authz.ActionSetUserRole, nil) {
		return nil, ErrAccessUnauthorized
	}
	if !role.Valid() {
		return nil, ErrUnknownRole
	}

	if err := s.userRepo.UpdateRole(targetID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}
