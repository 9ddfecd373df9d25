package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Uploads  UploadConfig
	Session  SessionConfig
	Gemini   GeminiConfig
}

type PostgresConfig struct {
	URL string `env:"POSTGRES_URL, default=postgres://localhost:5432/jobmatch?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir      string `env:"UPLOAD_DIR,       default=./uploads"`
	MaxBytes string `env:"MAX_UPLOAD_SIZE,  default=10M"`
}

type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL, default=24h"`
}

type GeminiConfig struct {
	// APIKey enables the assistant backend; empty means canned replies only.
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL,   default=gemini-1.5-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
