// Package config loads process configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vit0-9/redirect_detector/pkg/detector"
)

// Config holds the runtime settings of the CLI and the API server.
type Config struct {
	ReadChunkSize  int
	MaxRedirects   int
	MaxBodySize    int64
	LogLevel       string
	Env            string
	Port           string
	RequestTimeout time.Duration
	UserAgent      string
}

// Default returns the settings used when nothing is set in the environment.
func Default() Config {
	return Config{
		ReadChunkSize:  detector.DefaultReadChunkSize,
		MaxRedirects:   detector.DefaultMaxRedirects,
		MaxBodySize:    detector.DefaultMaxBodySize,
		LogLevel:       "error",
		Port:           "8080",
		RequestTimeout: 30 * time.Second,
	}
}

// Load reads the given .env files (".env" when none are given) and then the
// environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to Default
// for unset ones.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.ReadChunkSize, err = envInt("READ_CHUNK_SIZE", cfg.ReadChunkSize); err != nil {
		return Config{}, err
	}
	if cfg.MaxRedirects, err = envInt("MAX_REDIRECTS", cfg.MaxRedirects); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodySize, err = envInt64("MAX_BODY_SIZE", cfg.MaxBodySize); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = envDuration("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.Env = envString("ENV", cfg.Env)
	cfg.Port = envString("PORT", cfg.Port)
	cfg.UserAgent = envString("USER_AGENT", cfg.UserAgent)

	return cfg, nil
}

func (c Config) Bounds() detector.Bounds {
	return detector.Bounds{
		MaxRedirects:  c.MaxRedirects,
		MaxBodySize:   c.MaxBodySize,
		ReadChunkSize: c.ReadChunkSize,
	}
}

func (c Config) ClientOptions() detector.ClientOptions {
	return detector.ClientOptions{
		Timeout:   c.RequestTimeout,
		UserAgent: c.UserAgent,
	}
}

func (c Config) IsDev() bool {
	return c.Env == "dev"
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
