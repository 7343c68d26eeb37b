package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// EnvPrefix is prepended to every Config env tag.
const EnvPrefix = "FIELDCHECK_"

// Config holds Validator defaults that can be supplied through the environment.
type Config struct {
	DateFormat        string `env:"DATE_FORMAT" envDefault:"YYYY-MM-DD"`
	Timezone          string `env:"TIMEZONE" envDefault:"Local"`
	LegacyCoordinates bool   `env:"LEGACY_COORDINATES" envDefault:"false"`

	// Log enables failure logging; FIELDCHECK_LOG_LEVEL unset keeps it off.
	Log logger.Config `envPrefix:"LOG_"`
}

// LoadConfig reads Config from FIELDCHECK_* environment variables and the
// optional .env file.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a Validator from cfg. Options are applied after the
// config values and override them.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	var base []Option

	if cfg.DateFormat != "" {
		if _, err := Layout(cfg.DateFormat); err != nil {
			return nil, err
		}
		base = append(base, WithDateFormat(cfg.DateFormat))
	}

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errors.Join(ErrInvalidTimezone, fmt.Errorf("%q: %w", cfg.Timezone, err))
		}
		base = append(base, WithLocation(loc))
	}

	if cfg.LegacyCoordinates {
		base = append(base, WithLegacyCoordinates())
	}

	log, err := logger.FromConfig(cfg.Log)
	if err != nil {
		return nil, err
	}
	base = append(base, WithLogger(log))

	return New(append(base, opts...)...), nil
}
