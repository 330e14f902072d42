package auth

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	svc := NewTokenService("test-secret-key", time.Hour)
	logger := log.New(io.Discard, "", 0)

	var seen Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			t.Fatal("identity missing from context")
		}
		seen = identity
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(svc, logger)(next)

	token, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ratings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if seen.Email != "a@x.com" {
		t.Fatalf("context identity = %q, want a@x.com", seen.Email)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	issuer := NewTokenService("test-secret-key", -time.Minute)
	verifier := NewTokenService("test-secret-key", time.Hour)
	logger := log.New(io.Discard, "", 0)

	token, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	handler := Middleware(verifier, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/ratings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
