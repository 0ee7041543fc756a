package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, loaded from SCREENHUB_* environment
// variables once at startup and passed explicitly to the components that
// need it.
type Config struct {
	Addr          string        `env:"SCREENHUB_ADDR" envDefault:":8080"`
	Env           string        `env:"SCREENHUB_ENV" envDefault:"dev"`
	PostgresDSN   string        `env:"SCREENHUB_PG_DSN"`
	SessionSecret string        `env:"SCREENHUB_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SCREENHUB_SESSION_TTL" envDefault:"8h"`
	RateBurst     int           `env:"SCREENHUB_RATE_BURST" envDefault:"20"`
	RatePerSec    int           `env:"SCREENHUB_RATE_PER_SEC" envDefault:"10"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SecureCookies reports whether session cookies must carry the Secure flag.
func (c Config) SecureCookies() bool {
	return c.Env == "prod" || c.Env == "staging"
}
