package httpserver

import (
	"encoding/json"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateRatingPayload(t *testing.T) {
	tests := []struct {
		name      string
		req       ratingRequest
		wantScore int
		wantErr   bool
	}{
		{"valid low", ratingRequest{MovieID: "m1", Rating: floatPtr(0)}, 0, false},
		{"valid high", ratingRequest{MovieID: "m1", Rating: floatPtr(5)}, 5, false},
		{"valid mid", ratingRequest{MovieID: "m1", Rating: floatPtr(3)}, 3, false},
		{"missing movie id", ratingRequest{Rating: floatPtr(3)}, 0, true},
		{"blank movie id", ratingRequest{MovieID: "   ", Rating: floatPtr(3)}, 0, true},
		{"missing rating", ratingRequest{MovieID: "m1"}, 0, true},
		{"fractional", ratingRequest{MovieID: "m1", Rating: floatPtr(4.5)}, 0, true},
		{"too high", ratingRequest{MovieID: "m1", Rating: floatPtr(6)}, 0, true},
		{"negative", ratingRequest{MovieID: "m1", Rating: floatPtr(-1)}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := validateRatingPayload(tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got score %d", score)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if score != tt.wantScore {
				t.Fatalf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func FuzzValidateRatingPayload(f *testing.F) {
	seeds := []string{
		`{"movieId":"m1","movieTitle":"Inception","rating":4}`,
		`{"movieId":"m1","rating":4.5}`,
		`{"rating":3}`,
		`{"movieId":"m1","rating":-1}`,
		`{}`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		var req ratingRequest
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return
		}
		score, err := validateRatingPayload(req)
		if err != nil {
			return
		}
		if score < 0 || score > 5 {
			t.Fatalf("accepted out-of-range score %d from %q", score, raw)
		}
	})
}
