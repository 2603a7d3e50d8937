package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poseidon-markets/refdata-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so callers cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResponse is the payload returned on a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// AuthService handles credential verification, token issuance and
// token revocation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) bool
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	redis      *redis.Client
}

// NewAuthService creates a new AuthService instance. The redis client
// may be nil, in which case logout revocation is disabled.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, redisClient *redis.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:  token,
		UserID: user.ID,
	}, nil
}

// Logout denylists the token in Redis until its natural expiry. With no
// Redis configured this is a no-op: the token simply runs out its hour.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return err
	}
	if s.redis == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, revocationKey(token), "revoked", ttl).Err()
}

func (s *authService) IsRevoked(ctx context.Context, token string) bool {
	if s.redis == nil {
		return false
	}
	_, err := s.redis.Get(ctx, revocationKey(token)).Result()
	return err == nil
}

func revocationKey(token string) string {
	return fmt.Sprintf("revoked_token:%s", token)
}
