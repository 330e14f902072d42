package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moviepulse/moviepulse/internal/domain"
)

// MovieRatingsRepository reads the movie_ratings reference catalog. The
// service never mutates this table.
type MovieRatingsRepository struct {
	pool *pgxpool.Pool
}

const movieRatingColumns = `id, title, genre, rate, prefer, created_at`

// ListAll returns the full reference catalog.
func (r *MovieRatingsRepository) ListAll(ctx context.Context) ([]domain.MovieRating, error) {
	query := fmt.Sprintf(`SELECT %s FROM movie_ratings ORDER BY id`, movieRatingColumns)
	return r.queryMovieRatings(ctx, query)
}

// ListByPreference returns catalog rows matching a preference attribute.
func (r *MovieRatingsRepository) ListByPreference(ctx context.Context, prefer string) ([]domain.MovieRating, error) {
	query := fmt.Sprintf(`SELECT %s FROM movie_ratings WHERE prefer = $1 ORDER BY id`, movieRatingColumns)
	return r.queryMovieRatings(ctx, query, prefer)
}

// RandomSample returns up to n pseudo-random catalog rows.
func (r *MovieRatingsRepository) RandomSample(ctx context.Context, n int) ([]domain.MovieRating, error) {
	query := fmt.Sprintf(`SELECT %s FROM movie_ratings ORDER BY random() LIMIT $1`, movieRatingColumns)
	return r.queryMovieRatings(ctx, query, n)
}

func (r *MovieRatingsRepository) queryMovieRatings(ctx context.Context, query string, args ...interface{}) ([]domain.MovieRating, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movie ratings: %w", err)
	}
	defer rows.Close()

	results := make([]domain.MovieRating, 0)
	for rows.Next() {
		entry, err := scanMovieRating(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanMovieRating(row pgx.Row) (domain.MovieRating, error) {
	var entry domain.MovieRating
	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Genre,
		&entry.Rate,
		&entry.Prefer,
		&entry.CreatedAt,
	)
	if err != nil {
		return domain.MovieRating{}, err
	}
	return entry, nil
}
