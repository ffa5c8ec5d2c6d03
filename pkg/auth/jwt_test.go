// pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"
)

func TestTokenRoundtrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)

	token, err := m.Generate("sess-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.SessionID != "sess-123" {
		t.Errorf("session id = %q, want sess-123", claims.SessionID)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Minute).Generate("sess-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := NewTokenManager("secret-b", time.Minute).Validate(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestValidate_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	if _, err := m.Validate("not-a-token"); err == nil {
		t.Error("garbage must not validate")
	}
}

func TestValidate_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)
	token, err := m.Generate("sess-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := m.Validate(token); err == nil {
		t.Error("expired token must not validate")
	}
}
