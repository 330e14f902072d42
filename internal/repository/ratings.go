package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviepulse/moviepulse/internal/domain"
)

// RatingsRepository manages per-user movie ratings. Ownership is enforced by
// filtering every mutation on the caller's verified email.
type RatingsRepository struct {
	pool *pgxpool.Pool
}

// RatingUpsertParams captures the payload required to upsert a rating. The
// email always comes from the verified token, never from client input.
type RatingUpsertParams struct {
	UserEmail  string
	MovieID    string
	MovieTitle string
	Score      int
}

const ratingColumns = `id, user_email, movie_id, movie_title, score, created_at, updated_at`

// Upsert inserts or updates the caller's rating for a movie and reports
// whether the row was newly created. The lookup-then-write sequence is not
// atomic; an insert that loses the race to a concurrent duplicate hits the
// UNIQUE (user_email, movie_id) constraint and is retried once as an update.
func (r *RatingsRepository) Upsert(ctx context.Context, params RatingUpsertParams) (domain.UserRating, bool, error) {
	var existingID string
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM user_ratings WHERE user_email = $1 AND movie_id = $2`,
		params.UserEmail, params.MovieID,
	).Scan(&existingID)

	switch {
	case err == nil:
		rating, err := r.update(ctx, params)
		return rating, false, err
	case errors.Is(err, pgx.ErrNoRows):
		rating, err := r.insert(ctx, params)
		if err != nil {
			if isUniqueViolation(err) {
				rating, err = r.update(ctx, params)
				return rating, false, err
			}
			return domain.UserRating{}, false, fmt.Errorf("insert rating: %w", err)
		}
		return rating, true, nil
	default:
		return domain.UserRating{}, false, fmt.Errorf("lookup rating: %w", err)
	}
}

func (r *RatingsRepository) insert(ctx context.Context, params RatingUpsertParams) (domain.UserRating, error) {
	query := fmt.Sprintf(`
        INSERT INTO user_ratings (id, user_email, movie_id, movie_title, score)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING %s
    `, ratingColumns)

	row := r.pool.QueryRow(ctx, query, uuid.NewString(), params.UserEmail, params.MovieID, params.MovieTitle, params.Score)
	return scanRating(row)
}

func (r *RatingsRepository) update(ctx context.Context, params RatingUpsertParams) (domain.UserRating, error) {
	query := fmt.Sprintf(`
        UPDATE user_ratings
        SET score = $3, movie_title = $4, updated_at = now()
        WHERE user_email = $1 AND movie_id = $2
        RETURNING %s
    `, ratingColumns)

	row := r.pool.QueryRow(ctx, query, params.UserEmail, params.MovieID, params.Score, params.MovieTitle)
	rating, err := scanRating(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserRating{}, ErrNotFound
		}
		return domain.UserRating{}, fmt.Errorf("update rating: %w", err)
	}
	return rating, nil
}

// ListByUser returns the caller's ratings, newest first.
func (r *RatingsRepository) ListByUser(ctx context.Context, email string) ([]domain.UserRating, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM user_ratings
        WHERE user_email = $1
        ORDER BY created_at DESC, id DESC
    `, ratingColumns)

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]domain.UserRating, 0)
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// StatsForMovie returns the average score and rating count for a movie.
// Average is NULL when no ratings exist, rounded to one decimal otherwise.
func (r *RatingsRepository) StatsForMovie(ctx context.Context, movieID string) (domain.RatingStats, error) {
	const query = `
        SELECT ROUND(AVG(score)::numeric, 1)::float8 AS average,
               COUNT(*)::int8 AS count
        FROM user_ratings
        WHERE movie_id = $1
    `
	var stats domain.RatingStats
	if err := r.pool.QueryRow(ctx, query, movieID).Scan(&stats.Average, &stats.Count); err != nil {
		return domain.RatingStats{}, fmt.Errorf("movie stats: %w", err)
	}
	return stats, nil
}

// Delete removes the caller's rating for a movie. ErrNotFound when no owned
// row matched.
func (r *RatingsRepository) Delete(ctx context.Context, email, movieID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM user_ratings WHERE user_email = $1 AND movie_id = $2`,
		email, movieID,
	)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRating(row pgx.Row) (domain.UserRating, error) {
	var rating domain.UserRating
	err := row.Scan(
		&rating.ID,
		&rating.UserEmail,
		&rating.MovieID,
		&rating.MovieTitle,
		&rating.Score,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return domain.UserRating{}, err
	}
	return rating, nil
}
