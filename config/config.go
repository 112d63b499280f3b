package config

import (
	"fmt"
	"os"
	"time"

	"github.com/appclacks/scorecard/internal/database"
	"github.com/appclacks/scorecard/internal/http"
	"github.com/appclacks/scorecard/internal/tracing"
	"github.com/appclacks/scorecard/internal/validator"
	"gopkg.in/yaml.v3"
)

const (
	PostgresSource = "postgres"
	FileSource     = "file"
)

type Source struct {
	Type      string `validate:"required,oneof=postgres file"`
	Directory string `validate:"required_if=Type file"`
}

type Cache struct {
	TTL string
}

// Duration returns the cache TTL, one hour by default.
func (c Cache) Duration() (time.Duration, error) {
	if c.TTL == "" {
		return time.Hour, nil
	}
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache ttl %s: %w", c.TTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("the cache ttl should be positive, got %s", c.TTL)
	}
	return ttl, nil
}

type Configuration struct {
	HTTP     http.Configuration
	Source   Source
	Database database.Configuration
	Cache    Cache
	Tracing  tracing.Configuration
}

func Load(path string) (Configuration, error) {
	var config Configuration
	file, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("fail to read configuration file: %w", err)
	}
	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("fail to parse yaml configuration file: %w", err)
	}
	if err := validator.Validator.Struct(config.Source); err != nil {
		return config, err
	}
	if _, err := config.Cache.Duration(); err != nil {
		return config, err
	}
	return config, nil
}
