package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = "3000"
	DefaultJWTSecret  = "your_super_secret_key"
	DefaultBcryptCost = 10
)

// Config holds process-wide settings. It is loaded once in main and passed
// down explicitly.
type Config struct {
	Port       string
	JWTSecret  string
	BcryptCost int
	// TokenTTL of zero issues tokens without an exp claim.
	TokenTTL time.Duration
	LogLevel string

	MetricsEnabled bool
	MetricsToken   string

	CORSOrigins []string
	SeedFile    string
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary key lookup.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:         get("PORT", DefaultPort),
		JWTSecret:    get("JWT_SECRET", DefaultJWTSecret),
		LogLevel:     get("LOG_LEVEL", "info"),
		MetricsToken: get("METRICS_TOKEN", ""),
		SeedFile:     get("SEED_FILE", ""),
		CORSOrigins:  splitList(get("CORS_ORIGINS", "*")),
	}

	cost, err := strconv.Atoi(get("BCRYPT_COST", strconv.Itoa(DefaultBcryptCost)))
	if err != nil {
		return Config{}, fmt.Errorf("BCRYPT_COST: %w", err)
	}
	cfg.BcryptCost = cost

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if ttl < 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must not be negative")
	}
	cfg.TokenTTL = ttl

	enabled, err := strconv.ParseBool(get("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("METRICS_ENABLED: %w", err)
	}
	cfg.MetricsEnabled = enabled

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
