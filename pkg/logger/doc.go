// Package logger builds slog loggers for fieldcheck components.
//
// New takes functional options; FromConfig takes the Config that validator
// reads from FIELDCHECK_LOG_LEVEL and FIELDCHECK_LOG_FORMAT. A config with no
// level produces Discard, so failure logging is off unless asked for.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("field check failed",
//	    logger.Field("email"),
//	    logger.Value("not-an-email"),
//	    logger.Check("validation.email"),
//	)
package logger
