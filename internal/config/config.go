package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `env:"SERVER_PORT, default=8080"`
	Env         string `env:"APP_ENV, default=development"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
	SwaggerHost string `env:"SWAGGER_HOST"`

	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Seed  SeedConfig
}

// DBConfig selects the GORM dialect and its DSN.
type DBConfig struct {
	Driver string `env:"DB_DRIVER, default=mysql"`
	DSN    string `env:"DB_DSN, default=user:password@tcp(localhost:3306)/contactbook?charset=utf8mb4&parseTime=True&loc=Local"`
	Reset  bool   `env:"RESET_DB, default=false"`
}

// RedisConfig configures the optional read-through cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// JWTConfig configures token signing and the session cookie.
type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET, default=change-me"`
	ExpiresIn  time.Duration `env:"JWT_EXPIRES_IN, default=72h"`
	CookieName string        `env:"COOKIE_NAME, default=contactbook_session"`
}

// SeedConfig is read by cmd/seed only.
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL, default=admin@contactbook.local"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
	AdminName     string `env:"SEED_ADMIN_NAME, default=Administrator"`
	// ContactsURL optionally points at a JSON array of contacts to import.
	ContactsURL string `env:"SEED_CONTACTS_URL"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load builds Config from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith builds Config from the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
