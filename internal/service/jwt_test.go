package service

import (
	"testing"
	"time"
)

const (
	testSecret   = "this-is-a-test-secret-with-32-bytes!"
	testIssuer   = "refdata-service"
	testAudience = "refdata-clients"
	testExpiry   = time.Hour
)

func newTestJWTService(t *testing.T) JWTService {
	t.Helper()
	svc := NewJWTService(testSecret, testIssuer, testAudience, testExpiry)
	if svc == nil {
		t.Fatal("NewJWTService() returned nil for valid secret")
	}
	return svc
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewJWTService_ShortSecret(t *testing.T) {
	svc := NewJWTService("too-short", testIssuer, testAudience, testExpiry)
	if svc != nil {
		t.Error("NewJWTService() should return nil for a secret under 32 bytes")
	}
}

func TestNewJWTService_ValidSecret(t *testing.T) {
	svc := newTestJWTService(t)
	if svc.Expiry() != testExpiry {
		t.Errorf("Expiry() = %v, want %v", svc.Expiry(), testExpiry)
	}
}

// =============================================================================
// GenerateToken / ValidateToken Tests
// =============================================================================

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(42, "alice", "Admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Role != "Admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "Admin")
	}
	if claims.Issuer != testIssuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, testIssuer)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() should reject garbage input")
	}
	if _, err := svc.ValidateToken(""); err == nil {
		t.Error("ValidateToken() should reject empty input")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	other := NewJWTService("another-secret-that-is-32-bytes!!", testIssuer, testAudience, testExpiry)

	token, err := svc.GenerateToken(1, "alice", "User")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject token signed with a different secret")
	}
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	svc := newTestJWTService(t)
	other := NewJWTService(testSecret, "someone-else", testAudience, testExpiry)

	token, err := other.GenerateToken(1, "alice", "User")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject token with wrong issuer")
	}
}

func TestValidateToken_WrongAudience(t *testing.T) {
	svc := newTestJWTService(t)
	other := NewJWTService(testSecret, testIssuer, "other-clients", testExpiry)

	token, err := other.GenerateToken(1, "alice", "User")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject token with wrong audience")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	short := NewJWTService(testSecret, testIssuer, testAudience, -time.Minute)

	token, err := short.GenerateToken(1, "alice", "User")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := short.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject expired token")
	}
}
