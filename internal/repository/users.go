package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviepulse/moviepulse/internal/domain"
)

// UsersRepository provides persistence helpers for user accounts.
type UsersRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new account. The primary key on email is the uniqueness
// backstop; a violation surfaces as ErrDuplicateEmail.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (domain.User, error) {
	const query = `
        INSERT INTO users (email, password_hash)
        VALUES ($1, $2)
        RETURNING email, password_hash, created_at
    `
	var user domain.User
	err := r.pool.QueryRow(ctx, query, email, passwordHash).Scan(
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetByEmail fetches an account by its email.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
        SELECT email, password_hash, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}
