package domain

import "time"

// MovieRating is one row of the read-only reference catalog. The service
// never writes to this table; rows arrive out-of-band via the seeder.
type MovieRating struct {
	ID        int64
	Title     string
	Genre     *string
	Rate      *float64
	Prefer    *string
	CreatedAt time.Time
}
