package auth

import (
	"errors"
	"testing"
)

func TestTokenFlow(t *testing.T) {
	service := NewService("secret-key", "test-jwt-secret-12345")

	token, err := service.IssueToken("secret-key")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	role, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if role != RoleAdmin {
		t.Fatalf("expected role %s, got %s", RoleAdmin, role)
	}
}

func TestIssueToken_WrongKey(t *testing.T) {
	service := NewService("secret-key", "test-jwt-secret-12345")

	if _, err := service.IssueToken("wrong"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := service.IssueToken(""); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey for empty key, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService("secret-key", "test-jwt-secret-12345")

	if _, err := service.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-key", "secret-a")
	verifier := NewService("secret-key", "secret-b")

	token, err := issuer.IssueToken("secret-key")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}
