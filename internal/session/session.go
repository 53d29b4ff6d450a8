// Package session wraps gin-contrib/sessions for the login cookie.
// Only the user id is stored; the identity middleware reloads the user
// row per request so role changes apply to existing sessions at once.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserID = "LOGIN_USER_ID"

// CookieName is the session cookie registered on the router.
const CookieName = "bimdb"

func SetLoginUser(c *gin.Context, userID string) error {
	s := sessions.Default(c)
	s.Set(loginUserID, userID)
	return s.Save()
}

// GetLoginUserID returns the logged-in user id, or "" when the session
// carries no login.
func GetLoginUserID(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginUserID); obj != nil {
		if id, ok := obj.(string); ok {
			return id
		}
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUserID(c) != ""
}

func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}
