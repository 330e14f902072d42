package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviepulse/moviepulse/internal/store"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicateEmail indicates a registration collided with an existing account.
var ErrDuplicateEmail = errors.New("repository: email already registered")

// Repository aggregates all domain-specific repositories.
type Repository struct {
	Users        *UsersRepository
	Ratings      *RatingsRepository
	MovieRatings *MovieRatingsRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Users:        &UsersRepository{pool: pool},
		Ratings:      &RatingsRepository{pool: pool},
		MovieRatings: &MovieRatingsRepository{pool: pool},
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
