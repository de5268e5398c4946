package domain

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Name     string `json:"name"`
	Password string `json:"-"`        // bcrypt hash, set only for local accounts
	Provider string `json:"provider"` // "local" or "google", fixed at creation
	// GoogleID is the federated subject identifier. Pointer so absent values
	// don't collide on the unique index.
	GoogleID  *string   `json:"-" gorm:"uniqueIndex"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenClaims are the verified contents of a bearer token. They are
// authoritative for the request: role changes after issuance are not
// visible until the token expires.
type TokenClaims struct {
	UserID string
	Role   Role
	Email  string
}

// RoleCount is one row of the per-role user aggregation.
type RoleCount struct {
	Role  Role  `json:"role"`
	Count int64 `json:"count"`
}
