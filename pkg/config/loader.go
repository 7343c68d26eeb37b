package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option customizes a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the target struct,
// so `env:"DATE_FORMAT"` with prefix "FIELDCHECK_" reads FIELDCHECK_DATE_FORMAT.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env file, a missing file here is an error. Variables already present in the
// process environment are never overwritten.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// Load populates the struct pointed to by v from environment variables.
//
// The default .env file in the working directory is loaded once per process
// if it exists. Fields are described with caarlos0/env tags:
//
//	type Config struct {
//		DateFormat string `env:"DATE_FORMAT" envDefault:"YYYY-MM-DD"`
//		Timezone   string `env:"TIMEZONE" envDefault:"Local"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
