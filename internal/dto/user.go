package dto

import "github.com/poseidon-markets/refdata-service/internal/models"

// UserDTO is the wire representation of a user account. Password is
// write-only: it binds on create/update and is never echoed back. The
// stored hash never appears on the wire in either direction.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password,omitempty" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Admin User"`
}

// UserFromModel maps a user record to its wire representation. The
// password field is left empty.
func UserFromModel(m models.User) UserDTO {
	return UserDTO{
		ID:       m.ID,
		Username: m.Username,
		FullName: m.FullName,
		Role:     m.Role,
	}
}
