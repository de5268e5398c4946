package usecase

import (
	"context"

	authdomain "marketplace-backend/internal/auth/domain"
	authdto "marketplace-backend/internal/auth/dto"
)

// AuthUsecase handles registration, login, the Google sign-in flow and
// bearer-token issuance/verification.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// GoogleLoginURL returns the consent-screen URL for the
	// authorization-code flow.
	GoogleLoginURL(state string) string
	// GoogleCallback exchanges the authorization code, reconciles the
	// federated profile into a local user and issues a token.
	GoogleCallback(ctx context.Context, code string) (*authdto.TokenResponse, error)

	// ValidateToken verifies signature and expiry and returns the embedded
	// claims. It performs no store lookup: the claims are authoritative for
	// the lifetime of the token.
	ValidateToken(token string) (*authdomain.TokenClaims, error)

	CurrentUser(userID string) (*authdomain.User, error)
}
