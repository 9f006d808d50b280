package logger

import (
	"io"
	"log/slog"

	. "github.com/go-ozzo/ozzo-validation"
)

type Config struct {
	Level     string
	Format    string
	AddSource bool

	// Output defaults to os.Stderr so logs never mix with console output on stdout.
	Output io.Writer
}

func (c *Config) Validate() error {
	return ValidateStruct(c,
		Field(&c.Level, Required, In("debug", "info", "warn", "error")),
		Field(&c.Format, Required, In("json", "text")),
	)
}

func (c *Config) GetSlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
