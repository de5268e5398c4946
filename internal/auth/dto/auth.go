package dto

import authdomain "marketplace-backend/internal/auth/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string           `json:"token"`
	User  *authdomain.User `json:"user"`
}

// GoogleProfile is the federated profile returned by Google's userinfo
// endpoint after a successful code exchange.
type GoogleProfile struct {
	Sub     string
	Email   string
	Name    string
	Picture string
}
