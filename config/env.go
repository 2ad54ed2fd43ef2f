package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env (or the files named in ENV_FILE) into the process
// environment. Variables already set win. A missing file is not an error.
func LoadEnv() {
	files := []string{".env"}
	if f := os.Getenv("ENV_FILE"); f != "" {
		files = []string{f}
	}
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("env file not loaded", "files", files, "err", err)
	}
}

// Get returns the variable k, or def when it is unset or empty.
func Get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
