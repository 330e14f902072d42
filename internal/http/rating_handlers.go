package httpserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moviepulse/moviepulse/internal/auth"
	"github.com/moviepulse/moviepulse/internal/domain"
	"github.com/moviepulse/moviepulse/internal/repository"
)

type ratingRequest struct {
	MovieID    string   `json:"movieId"`
	MovieTitle string   `json:"movieTitle"`
	Rating     *float64 `json:"rating"`
}

type ratingResponse struct {
	ID         string `json:"id"`
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	Rating     int    `json:"rating"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type movieStatsResponse struct {
	MovieID       string  `json:"movieId"`
	AverageRating *string `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

// validateRatingPayload checks the payload before any storage access: the
// movie id must be present and the rating an integral number in [0,5].
func validateRatingPayload(req ratingRequest) (int, error) {
	if strings.TrimSpace(req.MovieID) == "" {
		return 0, fmt.Errorf("movieId is required")
	}
	if req.Rating == nil {
		return 0, fmt.Errorf("rating is required")
	}
	value := *req.Rating
	if value != math.Trunc(value) || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("rating must be an integer")
	}
	score := int(value)
	if score < 0 || score > 5 {
		return 0, fmt.Errorf("rating must be between 0 and 5")
	}
	return score, nil
}

func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	var req ratingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	score, err := validateRatingPayload(req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rating, created, err := s.repo.Ratings.Upsert(r.Context(), repository.RatingUpsertParams{
		UserEmail:  identity.Email,
		MovieID:    strings.TrimSpace(req.MovieID),
		MovieTitle: strings.TrimSpace(req.MovieTitle),
		Score:      score,
	})
	if err != nil {
		s.logger.Printf("upsert rating: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save rating")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	s.respondJSON(w, status, toRatingResponse(rating))
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	ratings, err := s.repo.Ratings.ListByUser(r.Context(), identity.Email)
	if err != nil {
		s.logger.Printf("list ratings: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list ratings")
		return
	}

	out := make([]ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, toRatingResponse(rating))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleMovieStats(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	stats, err := s.repo.Ratings.StatsForMovie(r.Context(), movieID)
	if err != nil {
		s.logger.Printf("movie stats: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rating stats")
		return
	}

	resp := movieStatsResponse{
		MovieID:      movieID,
		TotalRatings: stats.Count,
	}
	if stats.Average != nil {
		formatted := fmt.Sprintf("%.1f", *stats.Average)
		resp.AverageRating = &formatted
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteRating(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	movieID := chi.URLParam(r, "movieID")
	if err := s.repo.Ratings.Delete(r.Context(), identity.Email, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Rating not found")
			return
		}
		s.logger.Printf("delete rating: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete rating")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"movieId": movieID})
}

func toRatingResponse(rating domain.UserRating) ratingResponse {
	return ratingResponse{
		ID:         rating.ID,
		MovieID:    rating.MovieID,
		MovieTitle: rating.MovieTitle,
		Rating:     rating.Score,
		CreatedAt:  rating.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rating.UpdatedAt.Format(time.RFC3339),
	}
}
