package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvContentDir = "SITEGEN_CONTENT_DIR"
	EnvPublicDir  = "SITEGEN_PUBLIC_DIR"
	EnvEnvFile    = "SITEGEN_ENV_FILE"
)

// loadEnvFiles loads SITEGEN_ENV_FILE when set, otherwise .env.local and .env.
// godotenv never overrides variables already present in the process
// environment, so .env.local wins over .env.
func loadEnvFiles() error {
	if file := os.Getenv(EnvEnvFile); file != "" {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load env file %s: %w", file, err)
		}
		return nil
	}
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvContentDir); v != "" {
		cfg.ContentDir = v
	}
	if v := os.Getenv(EnvPublicDir); v != "" {
		cfg.PublicDir = v
	}
}
