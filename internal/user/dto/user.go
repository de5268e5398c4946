package dto

// UpdateUserRequest is a partial self-update. Role changes go through the
// admin router only.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}
