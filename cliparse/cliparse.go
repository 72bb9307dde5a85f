package cliparse

import (
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL   string
	APIToken     string
	DatabaseURL  string
	DatabaseType string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Local .env is optional; a missing file is the normal deployed state
	_ = godotenv.Load()

	fs := flag.NewFlagSet("taskmint", flag.ContinueOnError)

	// Backend config (can be CLI args or env)
	fs.StringVar(&cfg.BackendURL, "b", "", "Labeling backend base URL")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Cache database URL or path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Cache database type (sqlite, postgres or redis)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.APIToken, "k", "", "Backend API token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.BackendURL == "" {
		cfg.BackendURL = os.Getenv("BACKEND_URL")
	}
	if cfg.BackendURL == "" {
		return Config{}, errors.New("backend URL required (use -b or BACKEND_URL env)")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskmint.db" // local sqlite file
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	// Secret - MUST be provided
	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("API_TOKEN")
	}
	if cfg.APIToken == "" {
		return Config{}, errors.New("API_TOKEN required")
	}

	return cfg, nil
}
