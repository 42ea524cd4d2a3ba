package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration, loaded from the environment
// (optionally seeded from a .env file).
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
	Email EmailConfig
}

type AppConfig struct {
	Port     string `envconfig:"GROCERY_PORT" default:"8000"`
	LogLevel string `envconfig:"GROCERY_LOG_LEVEL" default:"info"`
}

type MongoConfig struct {
	URI      string `envconfig:"GROCERY_MONGO_URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"GROCERY_MONGO_DB" default:"grocery_store"`
}

type JWTConfig struct {
	Secret string        `envconfig:"GROCERY_JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"GROCERY_JWT_TTL" default:"24h"`
}

type EmailConfig struct {
	SendgridAPIKey string `envconfig:"GROCERY_SENDGRID_API_KEY"`
	Sender         string `envconfig:"GROCERY_EMAIL_SENDER"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
