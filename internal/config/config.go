package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	BaseURL string
	Env     string
	Port    string

	SessionSecret string

	HTTPTimeout time.Duration

	Admin   AdminConfig
	State   StateConfig
	Refresh RefreshConfig
}

// AdminConfig contains the local admin credential check parameters.
// The password is compared against PasswordHash when set; otherwise against
// Password directly (demo fallback matching the hosted storefront).
type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string
}

// StateConfig locates the persisted client state file (theme + session token).
type StateConfig struct {
	Path string
}

// RefreshConfig contains interval configuration for the background
// catalog/order refresh worker.
type RefreshConfig struct {
	Interval time.Duration
	Enabled  bool
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.BaseURL = strings.TrimRight(getEnv("BASE_URL", ""), "/")
	cfg.Env = getEnv("ENV", "development")
	cfg.Port = getEnv("PORT", "8080")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "")

	cfg.Admin = AdminConfig{
		Email:        getEnv("ADMIN_EMAIL", "admin@kth.com"),
		Password:     getEnv("ADMIN_PASSWORD", "test123"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	cfg.State = StateConfig{
		Path: getEnv("STATE_PATH", defaultStatePath()),
	}

	var err error
	if cfg.HTTPTimeout, err = parseDurationEnv("HTTP_TIMEOUT", "30s"); err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if cfg.Refresh.Interval, err = parseDurationEnv("REFRESH_INTERVAL", "5m"); err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.Refresh.Enabled = getEnvBool("REFRESH_ENABLED", true)

	if cfg.BaseURL == "" {
		return nil, errors.New("BASE_URL must be set to the storefront API root")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET must be set for admin sessions")
	}

	return cfg, nil
}

// defaultStatePath places the state file under the user's config dir, falling
// back to the working directory when that cannot be resolved.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".storefront-state.json"
	}
	return dir + string(os.PathSeparator) + "storefront" + string(os.PathSeparator) + "state.json"
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvBool returns the value of an environment variable as a bool or a default if empty/invalid.
func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
