package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// minSecretBytes is the minimum entropy accepted for the HS256 signing key.
const minSecretBytes = 32

// ErrSigningKeyMisconfigured is fatal at startup: the service refuses to run
// with a missing or weak signing secret rather than fall back to a default.
var ErrSigningKeyMisconfigured = errors.New("signing key misconfigured: JWT_SECRET must be set and at least 32 bytes")

type Config struct {
	Port           string        `env:"PORT,             default=8080"`
	Env            string        `env:"ENV,              default=development"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,        default=12h"`
	TierRefresh    time.Duration `env:"TIER_REFRESH,     default=5m"`
	LoginRateLimit int           `env:"LOGIN_RATE_LIMIT, default=5"`
	LogLevel       string        `env:"LOG_LEVEL,        default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=housebroker"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces setup invariants that must hold before serving traffic.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < minSecretBytes {
		return ErrSigningKeyMisconfigured
	}
	return nil
}
