package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAliases are the name variants that identify the user's own games
// when no ALIASES env value and no CLI arguments are given.
var DefaultAliases = []string{
	"Mitusov, Semen",
	"Semen Mitusov",
	"mitusov semen",
	"Митусов Семен",
}

type Config struct {
	InputPath string
	OutputDir string
	DBPath    string
	LogLevel  string
	Aliases   []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing.
func Load() Config {
	// Ignore error so the tool still runs when .env is absent.
	_ = godotenv.Load()

	return Config{
		InputPath: envOr("INPUT_PATH", "games.pgn"),
		OutputDir: envOr("OUTPUT_DIR", "games"),
		DBPath:    envOr("DB_PATH", "file:exports.db"),
		LogLevel:  envOr("LOG_LEVEL", "INFO"),
		Aliases:   envListOr("ALIASES", DefaultAliases), // semicolon-separated: names contain commas
	}
}

// Validate checks that the configuration can drive a run. An empty DBPath is
// valid and disables the export manifest.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("INPUT_PATH cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR cannot be empty")
	}
	if len(c.Aliases) == 0 {
		return fmt.Errorf("ALIASES cannot be empty")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envListOr splits a semicolon-separated env value, trimming blanks.
func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
