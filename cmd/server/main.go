package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moviepulse/moviepulse/internal/auth"
	"github.com/moviepulse/moviepulse/internal/config"
	httpserver "github.com/moviepulse/moviepulse/internal/http"
	"github.com/moviepulse/moviepulse/internal/repository"
	"github.com/moviepulse/moviepulse/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[moviepulse] ", log.LstdFlags|log.Lshortfile)

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	storeOpts := store.Options{
		MaxConns:               int32(cfg.DBMaxConns),
		MinConns:               int32(cfg.DBMinConns),
		MaxConnIdleTime:        time.Duration(cfg.DBMaxIdleSecs) * time.Second,
		MaxConnLifetime:        time.Duration(cfg.DBMaxLifeSecs) * time.Second,
		ConnTimeout:            time.Duration(cfg.DBConnTimeoutSecs) * time.Second,
		StatementCacheCapacity: cfg.DBStatementCache,
		Logger:                 logger,
	}

	st, err := store.New(dbCtx, cfg.DBURL, storeOpts)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer st.Close()

	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	repo := repository.New(st)
	server := httpserver.New(cfg, st, repo, tokens, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}
