package usecase

import (
	"errors"

	admindto "marketplace-backend/internal/admin/dto"
	authdomain "marketplace-backend/internal/auth/domain"
	authrepo "marketplace-backend/internal/auth/repository"
	productdomain "marketplace-backend/internal/product/domain"
	productrepo "marketplace-backend/internal/product/repository"
)

var (
	// ErrInvalidRole signals a role outside the known set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserNotFound signals an unknown user id.
	ErrUserNotFound = errors.New("user not found")
)

type AdminUsecase interface {
	ListUsers() ([]authdomain.User, error)
	UpdateUserRole(id string, role string) (*authdomain.User, error)
	DeleteUser(id string) error
	DashboardStats() (*admindto.DashboardStats, error)
}

// adminUsecase implements AdminUsecase interface
type adminUsecase struct {
	userRepo    authrepo.UserRepository
	productRepo productrepo.ProductRepository
}

// NewAdminUsecase creates a new instance of adminUsecase
func NewAdminUsecase(userRepo authrepo.UserRepository, productRepo productrepo.ProductRepository) AdminUsecase {
	return &adminUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (u *adminUsecase) ListUsers() ([]authdomain.User, error) {
	return u.userRepo.FindAll()
}

// UpdateUserRole changes a user's stored role. Tokens issued before the
// change keep their embedded role until expiry.
func (u *adminUsecase) UpdateUserRole(id string, role string) (*authdomain.User, error) {
	newRole := authdomain.Role(role)
	if !authdomain.ValidRole(newRole) {
		return nil, ErrInvalidRole
	}

	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Role = newRole
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *adminUsecase) DeleteUser(id string) error {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.userRepo.Delete(id)
}

func (u *adminUsecase) DashboardStats() (*admindto.DashboardStats, error) {
	totalUsers, err := u.userRepo.Count()
	if err != nil {
		return nil, err
	}

	totalProducts, err := u.productRepo.Count()
	if err != nil {
		return nil, err
	}

	lowStock, err := u.productRepo.CountLowStock(productdomain.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	usersByRole, err := u.userRepo.CountByRole()
	if err != nil {
		return nil, err
	}

	return &admindto.DashboardStats{
		TotalUsers:       totalUsers,
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
		UsersByRole:      usersByRole,
	}, nil
}
