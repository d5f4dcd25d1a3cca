// Package config loads application configuration from environment variables.
// A .env file in the working directory is honored when present, which keeps
// local development close to how the service runs deployed.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the service.  Each field corresponds
// to an environment variable; unset variables fall back to defaults that make
// the service runnable out of the box.
type Config struct {
	Env     string // application environment (e.g. "dev", "prod")
	Port    string // HTTP port to listen on
	KBPath  string // path to the JSON knowledge file
	KBWatch bool   // cache the knowledge base and invalidate on file change
}

// Load reads the environment (after best-effort loading of a .env file) and
// returns the service configuration.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine; real env vars still apply

	return Config{
		Env:     getenv("APP_ENV", "dev"),
		Port:    getenv("APP_PORT", "8000"),
		KBPath:  getenv("KB_PATH", filepath.Join("data", "data.json")),
		KBWatch: getenv("KB_WATCH", "false") == "true",
	}
}

// getenv returns the value of key, or def when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseDur parses a Go duration string, falling back to def on any error.
func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// atoi converts s to an int, returning 0 when it does not parse.
func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
