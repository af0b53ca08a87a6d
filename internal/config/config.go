package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"5050" validate:"required,numeric"`
	Environment string `envconfig:"ENV" default:"development"`

	// Store settings
	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite" validate:"oneof=sqlite pgx"`
	DBDSN    string `envconfig:"DB_DSN" default:"./courses.db" validate:"required"`

	// Optional directory served at "/" next to the API
	StaticDir string `envconfig:"STATIC_DIR"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*" validate:"min=1"`

	// Catalog client settings
	APIBaseURL       string `envconfig:"CATALOG_API_URL" default:"http://localhost:5050" validate:"required,url"`
	ClientTimeoutSec int    `envconfig:"CATALOG_CLIENT_TIMEOUT_SEC" default:"10" validate:"min=1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in the local development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
