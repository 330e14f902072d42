package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/moviepulse/moviepulse/internal/auth"
	"github.com/moviepulse/moviepulse/internal/repository"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "a valid email is required")
		return
	}
	if req.Password == "" {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "password is required")
		return
	}

	hash, err := auth.HashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		s.logger.Printf("hash password: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}

	user, err := s.repo.Users.Create(r.Context(), email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.respondError(w, http.StatusBadRequest, "CONFLICT", "email is already registered")
			return
		}
		s.logger.Printf("create user: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}

	s.respondJSON(w, http.StatusCreated, registerResponse{Email: user.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	email := strings.TrimSpace(req.Email)
	user, err := s.repo.Users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusBadRequest, "BAD_CREDENTIALS", "invalid email or password")
			return
		}
		s.logger.Printf("lookup user: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		s.respondError(w, http.StatusBadRequest, "BAD_CREDENTIALS", "invalid email or password")
		return
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.logger.Printf("issue token: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}

	s.respondJSON(w, http.StatusOK, loginResponse{Token: token})
}
