package validator_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, validator.DefaultDateFormat, cfg.DateFormat)
		assert.Equal(t, "Local", cfg.Timezone)
		assert.False(t, cfg.LegacyCoordinates)
		assert.Empty(t, cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("reads prefixed environment", func(t *testing.T) {
		t.Setenv("FIELDCHECK_DATE_FORMAT", "d/m/Y")
		t.Setenv("FIELDCHECK_TIMEZONE", "UTC")
		t.Setenv("FIELDCHECK_LEGACY_COORDINATES", "true")
		t.Setenv("FIELDCHECK_LOG_LEVEL", "debug")
		t.Setenv("FIELDCHECK_LOG_FORMAT", "text")

		cfg, err := validator.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "d/m/Y", cfg.DateFormat)
		assert.Equal(t, "UTC", cfg.Timezone)
		assert.True(t, cfg.LegacyCoordinates)
		assert.Equal(t, logger.Config{Level: "debug", Format: "text"}, cfg.Log)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("FIELDCHECK_LEGACY_COORDINATES", "sometimes")
		_, err := validator.LoadConfig()
		assert.Error(t, err)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Run("applies config", func(t *testing.T) {
		v, err := validator.NewFromConfig(validator.Config{
			DateFormat:        "DD/MM/YYYY",
			Timezone:          "UTC",
			LegacyCoordinates: true,
		}, validator.WithClock(validator.FixedClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))))
		require.NoError(t, err)

		v.SetField("day", "15/06/2024").IsDate().IsToday()
		v.SetField("lat", "500").IsValidLat()

		_, failed := v.LastError()
		assert.False(t, failed)
	})

	t.Run("options override config", func(t *testing.T) {
		v, err := validator.NewFromConfig(validator.Config{DateFormat: "DD/MM/YYYY"}, validator.WithDateFormat("YYYY-MM-DD"))
		require.NoError(t, err)

		v.SetField("day", "2024-06-15").IsDate()
		_, failed := v.LastError()
		assert.False(t, failed)
	})

	t.Run("invalid date format", func(t *testing.T) {
		_, err := validator.NewFromConfig(validator.Config{DateFormat: "???"})
		assert.ErrorIs(t, err, validator.ErrInvalidDateFormat)
	})

	t.Run("log config", func(t *testing.T) {
		buf := &bytes.Buffer{}
		// an explicit logger replaces the one built from Log
		v, err := validator.NewFromConfig(validator.Config{
			Log: logger.Config{Level: "debug", Format: "text"},
		}, validator.WithLogger(logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))))
		require.NoError(t, err)
		v.SetField("email", "nope").IsEmail()
		assert.Contains(t, buf.String(), "field=email")

		_, err = validator.NewFromConfig(validator.Config{Log: logger.Config{Level: "loud"}})
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		_, err := validator.NewFromConfig(validator.Config{Timezone: "Mars/Olympus_Mons"})
		assert.ErrorIs(t, err, validator.ErrInvalidTimezone)
	})
}
