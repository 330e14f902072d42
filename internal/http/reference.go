package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/moviepulse/moviepulse/internal/domain"
)

const introduceSampleSize = 10

type movieRatingResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Genre     *string  `json:"genre,omitempty"`
	Rate      *float64 `json:"rate,omitempty"`
	Prefer    *string  `json:"prefer,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

type referenceQuery func(ctx context.Context) ([]domain.MovieRating, error)

// handleReferenceList serves one reference-catalog listing. Every such
// endpoint shares the same query-then-serialize shape, so they differ only
// in the query passed here.
func (s *Server) handleReferenceList(name string, query referenceQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := query(r.Context())
		if err != nil {
			s.logger.Printf("list reference ratings (%s): %v", name, err)
			s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list movie ratings")
			return
		}
		s.respondJSON(w, http.StatusOK, toMovieRatingResponses(entries))
	}
}

func (s *Server) preferenceQuery(prefer string) referenceQuery {
	return func(ctx context.Context) ([]domain.MovieRating, error) {
		return s.repo.MovieRatings.ListByPreference(ctx, prefer)
	}
}

func (s *Server) handleIntroduce(w http.ResponseWriter, r *http.Request) {
	entries, err := s.repo.MovieRatings.RandomSample(r.Context(), introduceSampleSize)
	if err != nil {
		s.logger.Printf("random sample: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sample movie ratings")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieRatingResponses(entries))
}

func toMovieRatingResponses(entries []domain.MovieRating) []movieRatingResponse {
	out := make([]movieRatingResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, movieRatingResponse{
			ID:        entry.ID,
			Title:     entry.Title,
			Genre:     entry.Genre,
			Rate:      entry.Rate,
			Prefer:    entry.Prefer,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
