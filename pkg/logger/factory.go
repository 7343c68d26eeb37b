package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var (
	ErrInvalidFormat = errors.New("invalid log format")
	ErrInvalidLevel  = errors.New("invalid log level")
)

// Config is the environment-facing form of the logger options. An empty Level
// disables logging.
type Config struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Option configures New.
type Option func(*settings)

type settings struct {
	level  slog.Leveler
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel sets the minimum level. Info by default.
func WithLevel(l slog.Leveler) Option {
	return func(s *settings) {
		if l != nil {
			s.level = l
		}
	}
}

// WithFormat selects the handler. Unknown formats panic; use ParseFormat to
// validate user input first.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("%w: %q", ErrInvalidFormat, f))
	}
	return func(s *settings) { s.format = f }
}

// WithTextFormatter is shorthand for WithFormat(FormatText).
func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithOutput redirects records to w. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr attaches attrs to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// New builds a JSON logger writing to stdout at Info unless options say otherwise.
func New(opts ...Option) *slog.Logger {
	s := &settings{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}

	ho := &slog.HandlerOptions{Level: s.level}
	var h slog.Handler = slog.NewJSONHandler(s.output, ho)
	if s.format == FormatText {
		h = slog.NewTextHandler(s.output, ho)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(h)
}

// FromConfig builds a logger from cfg; opts are applied after the config
// values. A config without a level yields Discard.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	if strings.TrimSpace(cfg.Level) == "" {
		return Discard(), nil
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format := FormatJSON
	if cfg.Format != "" {
		if format, err = ParseFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	return New(append([]Option{WithLevel(level), WithFormat(format)}, opts...)...), nil
}

// ParseFormat accepts "json" or "text" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// ParseLevel accepts slog level names ("debug", "WARN", "info+2").
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Join(ErrInvalidLevel, err)
	}
	return l, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
