package usecase

import (
	"errors"

	authdomain "marketplace-backend/internal/auth/domain"
	authrepo "marketplace-backend/internal/auth/repository"
	userdto "marketplace-backend/internal/user/dto"
)

var (
	// ErrUserNotFound signals an unknown user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken signals an email update colliding with another account.
	ErrEmailTaken = errors.New("email already registered")
)

type UserUsecase interface {
	List() ([]authdomain.User, error)
	Get(id string) (*authdomain.User, error)
	Update(id string, req *userdto.UpdateUserRequest) (*authdomain.User, error)
	Delete(id string) error
}

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo authrepo.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo authrepo.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) List() ([]authdomain.User, error) {
	return u.userRepo.FindAll()
}

func (u *userUsecase) Get(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) Update(id string, req *userdto.UpdateUserRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	// Federated accounts have no local password to change.
	if req.Password != nil && user.Provider == authdomain.ProviderLocal {
		hashed, err := authrepo.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		if errors.Is(err, authrepo.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Delete(id string) error {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.userRepo.Delete(id)
}
