package domain

import "time"

// UserRating is a single user's rating for a movie. At most one row exists
// per (user_email, movie_id) pair.
type UserRating struct {
	ID         string
	UserEmail  string
	MovieID    string
	MovieTitle string
	Score      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RatingStats aggregates the ratings for one movie. Average is nil when the
// movie has no ratings.
type RatingStats struct {
	Average *float64
	Count   int64
}
