package service

import (
	"context"
	"errors"
	"testing"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// =============================================================================
// Password Policy Tests
// =============================================================================

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Abcdef1!", true},
		{"valid long", "Sup3r-Secret-Passphrase", true},
		{"too short", "Ab1!", false},
		{"no uppercase", "abcdef1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validatePassword(tt.password); got != tt.want {
				t.Errorf("validatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestUserCreate_Success(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	var saved *models.User
	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		return nil, nil
	}
	mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
		user.ID = 5
		saved = user
		return nil
	}

	created, err := svc.Create(context.Background(), dto.UserDTO{
		Username: "alice",
		Password: "Abcdef1!",
		FullName: "Alice Smith",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID != 5 {
		t.Errorf("Create() ID = %d, want 5", created.ID)
	}
	if created.Password != "" {
		t.Error("Create() must not echo the password back")
	}
	if saved == nil {
		t.Fatal("Create() should persist the user")
	}
	if saved.PasswordHash == "Abcdef1!" {
		t.Error("Create() must not store the plaintext password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("Abcdef1!")); err != nil {
		t.Error("Create() stored hash should verify against the plaintext")
	}
}

func TestUserCreate_WeakPassword(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	repoCalled := false
	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		repoCalled = true
		return nil, nil
	}

	_, err := svc.Create(context.Background(), dto.UserDTO{
		Username: "alice",
		Password: "weak",
		FullName: "Alice Smith",
		Role:     models.RoleUser,
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Errorf("Create() error = %v, want %v", err, ErrWeakPassword)
	}
	if repoCalled {
		t.Error("Create() should reject weak passwords before touching the repository")
	}
}

func TestUserCreate_UsernameTaken(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		return &models.User{ID: 1, Username: username}, nil
	}

	_, err := svc.Create(context.Background(), dto.UserDTO{
		Username: "alice",
		Password: "Abcdef1!",
		FullName: "Alice Smith",
		Role:     models.RoleUser,
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Create() error = %v, want %v", err, ErrUsernameTaken)
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUserUpdate_KeepsHashForUnchangedPassword(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	originalHash := hashPassword(t, "Abcdef1!")
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.User, error) {
		return &models.User{ID: 3, Username: "alice", PasswordHash: originalHash, Role: models.RoleUser}, nil
	}

	var saved *models.User
	mockRepo.updateFunc = func(ctx context.Context, user *models.User) error {
		saved = user
		return nil
	}

	_, err := svc.Update(context.Background(), 3, dto.UserDTO{
		Username: "alice",
		Password: "Abcdef1!",
		FullName: "Alice Renamed",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if saved.PasswordHash != originalHash {
		t.Error("Update() should keep the stored hash when the password is unchanged")
	}
	if saved.FullName != "Alice Renamed" {
		t.Errorf("Update() FullName = %q, want %q", saved.FullName, "Alice Renamed")
	}
	if saved.Role != models.RoleAdmin {
		t.Errorf("Update() Role = %q, want %q", saved.Role, models.RoleAdmin)
	}
}

func TestUserUpdate_RehashesChangedPassword(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	originalHash := hashPassword(t, "Abcdef1!")
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.User, error) {
		return &models.User{ID: 3, Username: "alice", PasswordHash: originalHash, Role: models.RoleUser}, nil
	}

	var saved *models.User
	mockRepo.updateFunc = func(ctx context.Context, user *models.User) error {
		saved = user
		return nil
	}

	_, err := svc.Update(context.Background(), 3, dto.UserDTO{
		Username: "alice",
		Password: "NewPass2#",
		FullName: "Alice",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if saved.PasswordHash == originalHash {
		t.Error("Update() should re-hash a changed password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("NewPass2#")); err != nil {
		t.Error("Update() stored hash should verify against the new plaintext")
	}
}

func TestUserUpdate_WeakNewPassword(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	originalHash := hashPassword(t, "Abcdef1!")
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.User, error) {
		return &models.User{ID: 3, Username: "alice", PasswordHash: originalHash}, nil
	}

	_, err := svc.Update(context.Background(), 3, dto.UserDTO{
		Username: "alice",
		Password: "weak",
		FullName: "Alice",
		Role:     models.RoleUser,
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Errorf("Update() error = %v, want %v", err, ErrWeakPassword)
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.User, error) {
		return nil, nil
	}

	updated, err := svc.Update(context.Background(), 99, dto.UserDTO{
		Username: "ghost",
		Password: "Abcdef1!",
		FullName: "Ghost",
		Role:     models.RoleUser,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated != nil {
		t.Error("Update() should return nil for a missing user")
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestUserDelete_NotFound(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.User, error) {
		return nil, nil
	}

	removed, err := svc.Delete(context.Background(), 99)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if removed != nil {
		t.Error("Delete() should return nil for a missing user")
	}
}

// =============================================================================
// Admin Bootstrap Tests
// =============================================================================

func TestEnsureAdminUser_CreatesWhenMissing(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	mockRepo.countByRoleFunc = func(ctx context.Context, role string) (int64, error) {
		return 0, nil
	}
	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		return nil, nil
	}

	var saved *models.User
	mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
		user.ID = 1
		saved = user
		return nil
	}

	if err := EnsureAdminUser(context.Background(), mockRepo, svc, "admin", "Bootstr4p!"); err != nil {
		t.Fatalf("EnsureAdminUser() error = %v", err)
	}

	if saved == nil {
		t.Fatal("EnsureAdminUser() should create the admin")
	}
	if saved.Role != models.RoleAdmin {
		t.Errorf("bootstrap user role = %q, want %q", saved.Role, models.RoleAdmin)
	}
}

func TestEnsureAdminUser_SkipsWhenAdminExists(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	mockRepo.countByRoleFunc = func(ctx context.Context, role string) (int64, error) {
		return 1, nil
	}
	mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
		t.Error("EnsureAdminUser() should not create a second admin")
		return nil
	}

	if err := EnsureAdminUser(context.Background(), mockRepo, svc, "admin", "Bootstr4p!"); err != nil {
		t.Fatalf("EnsureAdminUser() error = %v", err)
	}
}

func TestEnsureAdminUser_SkipsWithoutCredentials(t *testing.T) {
	mockRepo := &mockUserRepository{}
	svc := NewUserService(mockRepo)

	if err := EnsureAdminUser(context.Background(), mockRepo, svc, "", ""); err != nil {
		t.Fatalf("EnsureAdminUser() error = %v", err)
	}
}
