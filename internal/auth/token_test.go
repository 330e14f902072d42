package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret-key", time.Hour)

	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.Email != "a@x.com" {
		t.Fatalf("identity.Email = %q, want a@x.com", identity.Email)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret-key", -time.Hour)

	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret-key", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Verify(%q) err = %v, want ErrTokenMalformed", raw, err)
		}
	}
}
