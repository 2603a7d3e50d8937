package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"go.uber.org/zap"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	loginFunc     func(ctx context.Context, username, password string) (*service.LoginResponse, error)
	logoutFunc    func(ctx context.Context, token string) error
	isRevokedFunc func(ctx context.Context, token string) bool
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return errors.New("not implemented")
}

func (m *mockAuthService) IsRevoked(ctx context.Context, token string) bool {
	if m.isRevokedFunc != nil {
		return m.isRevokedFunc(ctx, token)
	}
	return false
}

// =============================================================================
// Test Helpers
// =============================================================================

func createTestContext(method, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	c.Request = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse error body: %v", err)
	}
	return body["message"]
}

// =============================================================================
// Login Handler Tests
// =============================================================================

func TestLoginHandler_Success(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResponse, error) {
			return &service.LoginResponse{Token: "token_abc", UserID: 7}, nil
		},
	}
	handler := NewAuthHandler(mockService, zap.NewNop())

	w, c := createTestContext("POST", "/auth/login", LoginRequest{
		Username: "alice",
		Password: "Correct1!",
	})

	handler.Login(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response service.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Token != "token_abc" {
		t.Errorf("expected token_abc, got %s", response.Token)
	}
	if response.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", response.UserID)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(mockService, zap.NewNop())

	w, c := createTestContext("POST", "/auth/login", LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	handler.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if msg := errorMessage(t, w); msg != "invalid credentials" {
		t.Errorf("expected generic credentials message, got %q", msg)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	called := false
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResponse, error) {
			called = true
			return nil, nil
		},
	}
	handler := NewAuthHandler(mockService, zap.NewNop())

	w, c := createTestContext("POST", "/auth/login", map[string]string{"username": "alice"})

	handler.Login(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if called {
		t.Error("service should not be called when binding fails")
	}
}

func TestLoginHandler_ServiceError(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (*service.LoginResponse, error) {
			return nil, errors.New("db down")
		},
	}
	handler := NewAuthHandler(mockService, zap.NewNop())

	w, c := createTestContext("POST", "/auth/login", LoginRequest{
		Username: "alice",
		Password: "Correct1!",
	})

	handler.Login(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if msg := errorMessage(t, w); msg != internalErrorMessage {
		t.Errorf("expected masked error, got %q", msg)
	}
}

// =============================================================================
// Logout Handler Tests
// =============================================================================

func TestLogoutHandler_Success(t *testing.T) {
	var revoked string
	mockService := &mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	handler := NewAuthHandler(mockService, zap.NewNop())

	w, c := createTestContext("POST", "/auth/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer token_abc")

	handler.Logout(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if revoked != "token_abc" {
		t.Errorf("expected token_abc passed to service, got %q", revoked)
	}
}

func TestLogoutHandler_MissingToken(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{}, zap.NewNop())

	w, c := createTestContext("POST", "/auth/logout", nil)

	handler.Logout(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
