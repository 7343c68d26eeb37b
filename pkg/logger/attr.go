package logger

import "log/slog"

// Error returns an "error" attr, or an empty attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Value(value string) slog.Attr {
	return slog.String("value", value)
}

// Check names the failed check by its translation key.
func Check(key string) slog.Attr {
	return slog.String("check", key)
}
