package repository

import (
	"errors"

	authdomain "marketplace-backend/internal/auth/domain"
)

// ErrDuplicateKey signals a unique-constraint violation (email or google id).
var ErrDuplicateKey = errors.New("duplicate key")

// UserRepository persists user records. Lookups return (nil, nil) when no
// record matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	FindAll() ([]authdomain.User, error)
	Update(user *authdomain.User) error
	Delete(id string) error
	Count() (int64, error)
	CountByRole() ([]authdomain.RoleCount, error)
}
