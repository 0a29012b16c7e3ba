package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "afmaay", 15*time.Minute)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	gotID, gotRole, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if gotID != userID {
		t.Errorf("user ID: got %v, want %v", gotID, userID)
	}
	if gotRole != "admin" {
		t.Errorf("role: got %q, want admin", gotRole)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "afmaay", -time.Minute)

	token, err := m.GenerateAccessToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTManager_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuerA := NewJWTManager(testSecret, "afmaay", 15*time.Minute)
	issuerB := NewJWTManager(testSecret, "other", 15*time.Minute)

	token, err := issuerB.GenerateAccessToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := issuerA.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	a := NewJWTManager(testSecret, "afmaay", 15*time.Minute)
	b := NewJWTManager(strings.Repeat("x", 32), "afmaay", 15*time.Minute)

	token, err := b.GenerateAccessToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := a.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJWTManager_EmptyToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "afmaay", 15*time.Minute)
	if _, _, err := m.ValidateAccessToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "afmaay", 15*time.Minute)

	raw, hash, err := m.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if raw == "" || hash == "" {
		t.Fatal("raw and hash must be non-empty")
	}
	if HashToken(raw) != hash {
		t.Error("hash must equal HashToken(raw)")
	}

	raw2, _, err := m.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}
	if raw == raw2 {
		t.Error("two refresh tokens must differ")
	}
}
