package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

type movieEntry struct {
	Title  string   `json:"title"`
	Genre  *string  `json:"genre"`
	Rate   *float64 `json:"rate"`
	Prefer *string  `json:"prefer"`
}

// Loads reference rows into the movie_ratings catalog. Titles already
// present are skipped so the seeder can be re-run against a live database.
func main() {
	var (
		data  = flag.String("data", "movie-ratings.json", "path to seed data file")
		dbURL = flag.String("db", "", "database url (falls back to DB_URL)")
	)
	flag.Parse()

	_ = godotenv.Load()

	url := *dbURL
	if url == "" {
		url = os.Getenv("DB_URL")
	}
	if url == "" {
		log.Fatal("database url required: pass -db or set DB_URL")
	}

	file, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read seed data: %v", err)
	}

	var entries []movieEntry
	if err := json.Unmarshal(file, &entries); err != nil {
		log.Fatalf("parse seed data: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer conn.Close(ctx)

	const insert = `
        INSERT INTO movie_ratings (title, genre, rate, prefer)
        SELECT $1, $2, $3, $4
        WHERE NOT EXISTS (SELECT 1 FROM movie_ratings WHERE title = $1)
    `
	var loaded int64
	for _, entry := range entries {
		if entry.Title == "" {
			log.Printf("skipping entry with empty title")
			continue
		}
		tag, err := conn.Exec(ctx, insert, entry.Title, entry.Genre, entry.Rate, entry.Prefer)
		if err != nil {
			log.Fatalf("seed %q: %v", entry.Title, err)
		}
		loaded += tag.RowsAffected()
	}

	log.Printf("seeded %d of %d movie ratings", loaded, len(entries))
}
