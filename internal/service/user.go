package service

import (
	"context"
	"errors"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/models"
	"github.com/poseidon-markets/refdata-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrWeakPassword is returned when a password fails the credential policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters and contain an uppercase letter, a digit and a symbol")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserService exposes user account operations. Create and Update own
// the credential handling; password hashes never leave this layer.
type UserService interface {
	Create(ctx context.Context, d dto.UserDTO) (*dto.UserDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.UserDTO, error)
	GetAll(ctx context.Context) ([]dto.UserDTO, error)
	Update(ctx context.Context, id int64, d dto.UserDTO) (*dto.UserDTO, error)
	Delete(ctx context.Context, id int64) (*dto.UserDTO, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, d dto.UserDTO) (*dto.UserDTO, error) {
	if !validatePassword(d.Password) {
		return nil, ErrWeakPassword
	}

	existing, err := s.repo.FindByUsername(ctx, d.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     d.Username,
		PasswordHash: string(hash),
		FullName:     d.FullName,
		Role:         d.Role,
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	created := dto.UserFromModel(user)
	return &created, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*dto.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	d := dto.UserFromModel(*user)
	return &d, nil
}

func (s *userService) GetAll(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, dto.UserFromModel(user))
	}
	return result, nil
}

func (s *userService) Update(ctx context.Context, id int64, d dto.UserDTO) (*dto.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	// Re-hash only when the supplied plaintext no longer matches the
	// stored hash; an unchanged password keeps its hash.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(d.Password)) != nil {
		if !validatePassword(d.Password) {
			return nil, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.Username = d.Username
	user.FullName = d.FullName
	user.Role = d.Role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	updated := dto.UserFromModel(*user)
	return &updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) (*dto.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	removed := dto.UserFromModel(*user)
	return &removed, nil
}
