package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Load reads .env if present; system environment variables win otherwise.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — falling back to system environment")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// Client holds the settings shared by the storefront and admin apps.
type Client struct {
	BaseURL      string
	StateDir     string
	PollInterval time.Duration
}

func ClientFromEnv() Client {
	cfg := Client{
		BaseURL:      os.Getenv("SRINU_API_BASE_URL"),
		StateDir:     os.Getenv("SRINU_STATE_DIR"),
		PollInterval: 30 * time.Second,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.StateDir = filepath.Join(home, ".srinu_foods")
	}

	if raw := os.Getenv("SRINU_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️  Invalid SRINU_POLL_INTERVAL %q, keeping %s", raw, cfg.PollInterval)
		} else {
			cfg.PollInterval = d
		}
	}

	return cfg
}
