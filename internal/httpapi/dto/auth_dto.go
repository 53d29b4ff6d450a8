package dto

import "bimdb/internal/httpapi/models"

// RegisterRequest for creating an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}

// LoginRequest for signing in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returned after a successful login. The session cookie
// carries the browser login; the access token serves API callers.
type AuthResponse struct {
	UserID      string      `json:"user_id"`
	Username    string      `json:"username"`
	Role        models.Role `json:"role"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
}
