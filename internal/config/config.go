package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// DBDriver selects the gorm backend: "postgres" or "sqlite".
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"pilotlog.db"`

	PGHost     string `env:"PG_HOST" envDefault:"localhost"`
	PGPort     string `env:"PG_PORT" envDefault:"5432"`
	PGUser     string `env:"PG_USER" envDefault:"pilotlog"`
	PGPassword string `env:"PG_PASSWORD" envDefault:"pilotlog"`
	PGDatabase string `env:"PG_DB" envDefault:"pilotlog"`

	// CacheBackend selects the cache implementation: "memory" or "redis".
	CacheBackend  string `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`

	// JWTSecret signs bearer tokens accepted on mutating image endpoints.
	JWTSecret string `env:"JWT_SECRET" envDefault:""`
}

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// PostgresDSN assembles the connection string used by both gorm and sqlx.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns the host:port pair for the redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
