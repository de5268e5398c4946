package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authdomain "marketplace-backend/internal/auth/domain"
	authdto "marketplace-backend/internal/auth/dto"
	"marketplace-backend/internal/auth/repository"
	"marketplace-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	// ErrInvalidCredentials signals wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken signals a registration attempt for an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrGoogleAccount signals a local login against a federated account.
	ErrGoogleAccount = errors.New("please use Google Sign-In for this account")
	// ErrInvalidToken signals a malformed, tampered or expired bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNoEmail signals a federated profile without an email address.
	ErrNoEmail = errors.New("email not found in Google profile")
	// ErrUserNotFound signals a token whose subject no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	oauth    *oauth2.Config

	// fetchProfile retrieves the federated profile for an exchanged token.
	// A field so tests can substitute the network call.
	fetchProfile func(ctx context.Context, token *oauth2.Token) (*authdto.GoogleProfile, error)
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	u := &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
	u.fetchProfile = u.fetchGoogleProfile
	return u
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Provider: authdomain.ProviderLocal,
		Role:     authdomain.RoleUser,
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return u.tokenResponse(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.Provider != authdomain.ProviderLocal {
		return nil, ErrGoogleAccount
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.tokenResponse(user)
}

func (u *authUsecase) GoogleLoginURL(state string) string {
	return u.oauth.AuthCodeURL(state)
}

func (u *authUsecase) GoogleCallback(ctx context.Context, code string) (*authdto.TokenResponse, error) {
	token, err := u.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange: %w", err)
	}

	profile, err := u.fetchProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}

	user, err := u.reconcileGoogleProfile(profile)
	if err != nil {
		return nil, err
	}

	return u.tokenResponse(user)
}

func (u *authUsecase) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*authdto.GoogleProfile, error) {
	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(u.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}

	return &authdto.GoogleProfile{
		Sub:     info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

// reconcileGoogleProfile resolves a federated profile to a single local user
// record. An existing record is returned unchanged; there is no re-sync of
// name or avatar on repeat login. Creation is idempotent on conflict: losing
// a concurrent first-login race re-fetches the winner's row.
func (u *authUsecase) reconcileGoogleProfile(profile *authdto.GoogleProfile) (*authdomain.User, error) {
	if profile.Email == "" {
		return nil, ErrNoEmail
	}

	user, err := u.userRepo.FindByEmail(profile.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	name := profile.Name
	if name == "" {
		name = strings.SplitN(profile.Email, "@", 2)[0]
	}

	user = &authdomain.User{
		Email:    profile.Email,
		Name:     name,
		Provider: authdomain.ProviderGoogle,
		Role:     authdomain.RoleUser,
		Avatar:   profile.Picture,
	}
	if profile.Sub != "" {
		sub := profile.Sub
		user.GoogleID = &sub
	}

	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			existing, ferr := u.userRepo.FindByEmail(profile.Email)
			if ferr != nil {
				return nil, ferr
			}
			if existing == nil {
				return nil, err
			}
			return existing, nil
		}
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) CurrentUser(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) tokenResponse(user *authdomain.User) (*authdto.TokenResponse, error) {
	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{
		Token: token,
		User:  user,
	}, nil
}

func (u *authUsecase) issueToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !authdomain.ValidRole(authdomain.Role(roleStr)) {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &authdomain.TokenClaims{
		UserID: userID,
		Role:   authdomain.Role(roleStr),
		Email:  email,
	}, nil
}
