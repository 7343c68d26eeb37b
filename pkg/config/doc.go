// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once per
//     process when present.
//   - Additional `.env` files can be requested per call with WithEnvFiles.
//   - Struct fields are populated from `env` tags, optionally under a common
//     prefix supplied with WithPrefix.
//
// # Usage
//
//	type ValidatorConfig struct {
//	    DateFormat        string `env:"DATE_FORMAT" envDefault:"YYYY-MM-DD"`
//	    LegacyCoordinates bool   `env:"LEGACY_COORDINATES" envDefault:"false"`
//	}
//
//	var cfg ValidatorConfig
//	if err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
