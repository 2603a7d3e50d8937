package service

import (
	"context"
	"fmt"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/models"
	"github.com/poseidon-markets/refdata-service/internal/repository"
)

// EnsureAdminUser creates the initial administrator account when no
// Admin-role user exists yet. It is idempotent: running it on every
// boot is safe, and it does nothing when username or password is empty.
func EnsureAdminUser(ctx context.Context, repo repository.UserRepository, users UserService, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	admins, err := repo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admins: %w", err)
	}
	if admins > 0 {
		return nil
	}

	_, err = users.Create(ctx, dto.UserDTO{
		Username: username,
		Password: password,
		FullName: "Administrator",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	return nil
}
