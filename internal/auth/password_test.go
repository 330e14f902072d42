package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("securePassword123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "securePassword123" {
		t.Fatal("hash should not equal plaintext password")
	}
}

func TestHashPassword_DifferentHashes(t *testing.T) {
	hash1, err := HashPassword("securePassword123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := HashPassword("securePassword123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash1 == hash2 {
		t.Fatal("same password should produce different hashes due to salt")
	}
}

func TestVerifyPassword_Correct(t *testing.T) {
	hash, err := HashPassword("securePassword123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if !VerifyPassword(hash, "securePassword123") {
		t.Fatal("expected correct password to verify")
	}
}

func TestVerifyPassword_Incorrect(t *testing.T) {
	hash, err := HashPassword("securePassword123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if VerifyPassword(hash, "wrongPassword456") {
		t.Fatal("expected incorrect password to fail verification")
	}
	if VerifyPassword(hash, "") {
		t.Fatal("expected empty password to fail verification")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("not-a-valid-bcrypt-hash", "password") {
		t.Fatal("expected malformed hash to fail verification, not panic")
	}
	if VerifyPassword("", "password") {
		t.Fatal("expected empty hash to fail verification")
	}
}
