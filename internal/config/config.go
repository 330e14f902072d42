package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config captures all runtime configuration derived from environment variables.
// It is constructed once at startup and passed explicitly to every component.
type Config struct {
	Port              string
	DBURL             string
	JWTSecret         string
	TokenTTLHours     int
	BcryptCost        int
	CORSOrigin        string
	ReadTimeoutSecs   int
	WriteTimeoutSecs  int
	IdleTimeoutSecs   int
	DBMaxConns        int
	DBMinConns        int
	DBMaxIdleSecs     int
	DBMaxLifeSecs     int
	DBConnTimeoutSecs int
	DBStatementCache  int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "4000"),
		DBURL:             os.Getenv("DB_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTLHours:     getEnvInt("TOKEN_TTL_HOURS", 24),
		BcryptCost:        getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		CORSOrigin:        getEnv("CORS_ALLOWED_ORIGIN", "*"),
		ReadTimeoutSecs:   getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs:  getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:   getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		DBMaxConns:        getEnvInt("DB_MAX_CONNS", 20),
		DBMinConns:        getEnvInt("DB_MIN_CONNS", 2),
		DBMaxIdleSecs:     getEnvInt("DB_MAX_CONN_IDLE_SECS", 300),
		DBMaxLifeSecs:     getEnvInt("DB_MAX_CONN_LIFETIME_SECS", 3600),
		DBConnTimeoutSecs: getEnvInt("DB_CONN_TIMEOUT_SECS", 10),
		DBStatementCache:  getEnvInt("DB_STATEMENT_CACHE_CAPACITY", 256),
	}

	if cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TokenTTLHours <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.DBMaxConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.DBMinConns < 0 {
		return Config{}, fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return Config{}, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if cfg.DBStatementCache < 0 {
		return Config{}, fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
