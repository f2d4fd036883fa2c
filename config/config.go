package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	Server    Server
	Logger    Logger
	Converter Converter
}

// Server represents the HTTP server configuration.
type Server struct {
	Address         string        `env:"CONVERTER_SERVER_ADDRESS" env-default:":8080" env-description:"HTTP listen address"`
	ReadTimeout     time.Duration `env:"CONVERTER_SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"CONVERTER_SERVER_WRITE_TIMEOUT" env-default:"5s"`
	ShutdownTimeout time.Duration `env:"CONVERTER_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Logger represents a logger configuration.
type Logger struct {
	Level  string `env:"CONVERTER_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Format string `env:"CONVERTER_LOG_FORMAT" env-default:"logfmt" env-description:"logfmt or json"`
}

// Converter represents the conversion defaults.
type Converter struct {
	DefaultFrom string `env:"CONVERTER_DEFAULT_FROM" env-default:"IDR"`
	DefaultTo   string `env:"CONVERTER_DEFAULT_TO" env-default:"USD"`

	// StrictCurrencies rejects codes outside the rate table instead of
	// converting them at the pivot rate.
	StrictCurrencies bool `env:"CONVERTER_STRICT_CURRENCIES" env-default:"true"`
}

// Load reads the config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

// Usage describes the environment variables Load reads.
func Usage() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}
	return text
}
