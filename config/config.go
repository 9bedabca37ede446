package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. A
// missing DATABASE_URL is not an error: the server starts and every
// data endpoint reports the store as unavailable.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	SecretKey    string
	Port         string
	TokenTTL     time.Duration
}

func Load() Config {
	// Best effort; the file is optional outside local development.
	_ = godotenv.Load()

	return Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getenv("DATABASE_NAME", "storefront"),
		SecretKey:    getenv("SECRET_KEY", "supersecretkey"),
		Port:         getenv("PORT", "8000"),
		TokenTTL:     7 * 24 * time.Hour,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
