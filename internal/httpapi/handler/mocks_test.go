package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"time"

	"bimdb/internal/httpapi/dto"
	"bimdb/internal/httpapi/models"
	"bimdb/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds a router with the given identity already
// resolved, standing in for the identity middleware.
func newTestRouter(user *models.User) (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	store := cookie.NewStore([]byte("test-session-secret-0123456789ab"))
	r.Use(sessions.Sessions(session.CookieName, store))
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set("currentUser", user)
		}
		c.Next()
	})
	return r, r.Group("/api")
}

func performJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		encoded, _ := json.Marshal(payload)
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, out any) error {
	return json.Unmarshal(w.Body.Bytes(), out)
}

// MockAuthService mocks service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, email, password string) (*models.User, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (*models.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateAccessToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) AccessTokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockMovieService mocks service.MovieService
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Search(ctx context.Context, query string) ([]dto.MovieResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieResponse), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieResponse), args.Error(1)
}

// MockCommentService mocks service.CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(actor *models.User, movieID int64, req dto.CommentRequest) (*dto.CommentResponse, error) {
	args := m.Called(actor, movieID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Update(actor *models.User, commentID int64, req dto.CommentRequest) (*dto.CommentResponse, error) {
	args := m.Called(actor, commentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(actor *models.User, commentID int64) error {
	args := m.Called(actor, commentID)
	return args.Error(0)
}

func (m *MockCommentService) ListByMovie(movieID int64) (*dto.MovieCommentsResponse, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieCommentsResponse), args.Error(1)
}

func (m *MockCommentService) ListOwn(actor *models.User) ([]dto.CommentResponse, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

// MockTagService mocks service.TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(actor *models.User) ([]dto.TagResponse, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TagResponse), args.Error(1)
}

func (m *MockTagService) Create(actor *models.User, name, description string) (*dto.TagResponse, error) {
	args := m.Called(actor, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagResponse), args.Error(1)
}

func (m *MockTagService) Update(actor *models.User, tagID int64, name, description string) (*dto.TagResponse, error) {
	args := m.Called(actor, tagID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagResponse), args.Error(1)
}

func (m *MockTagService) SetActive(actor *models.User, tagID int64, active bool) (*dto.TagResponse, error) {
	args := m.Called(actor, tagID, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagResponse), args.Error(1)
}

func (m *MockTagService) Delete(actor *models.User, tagID int64) error {
	args := m.Called(actor, tagID)
	return args.Error(0)
}

// MockUserService mocks service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(actor *models.User) ([]dto.UserResponse, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}

func (m *MockUserService) SetRole(actor *models.User, targetID string, role models.Role) (*dto.UserResponse, error) {
	args := m.Called(actor, targetID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}
