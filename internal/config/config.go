// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/timedquiz/internal/history"
	"github.com/abhisek/timedquiz/internal/session"
)

// Config holds all application configuration.
type Config struct {
	DBPath             string
	QuestionsPath      string
	SecondsPerQuestion int
	PageSize           int
	HistoryOrder       history.Order
	LogFile            string
	LogLevel           string
}

// Load reads a .env file from the working directory if present, then
// configuration from environment variables. Variables already set in the
// environment take precedence over the .env file.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit .env paths. Missing files are ignored.
func LoadFiles(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	order, err := history.ParseOrder(getEnv("QUIZ_HISTORY_ORDER", string(history.NewestFirst)))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	seconds, err := getEnvInt("QUIZ_SECONDS_PER_QUESTION", session.DefaultSecondsPerQuestion)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	pageSize, err := getEnvInt("QUIZ_PAGE_SIZE", history.DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		DBPath:             getEnv("QUIZ_DB", ""),
		QuestionsPath:      getEnv("QUIZ_QUESTIONS", ""),
		SecondsPerQuestion: seconds,
		PageSize:           pageSize,
		HistoryOrder:       order,
		LogFile:            getEnv("QUIZ_LOG_FILE", defaultLogFile()),
		LogLevel:           getEnv("QUIZ_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration fields are usable.
func (c *Config) Validate() error {
	if c.SecondsPerQuestion <= 0 {
		return fmt.Errorf("QUIZ_SECONDS_PER_QUESTION must be > 0")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("QUIZ_PAGE_SIZE must be > 0")
	}
	if c.HistoryOrder != history.NewestFirst && c.HistoryOrder != history.OldestFirst {
		return fmt.Errorf("QUIZ_HISTORY_ORDER must be newest or oldest")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("QUIZ_LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

func defaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "timedquiz", "timedquiz.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "timedquiz.log")
	}
	return filepath.Join(home, ".local", "state", "timedquiz", "timedquiz.log")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}
