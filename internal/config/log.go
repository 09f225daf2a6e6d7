package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type LogConfig struct {
	Level string `env:"LEVEL" toml:"level" default:"warn" usage:"Log level (debug,info,warn,error)"`
	File  string `env:"FILE" toml:"file" usage:"Log file path"`
}

func (cfg LogConfig) level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return level, nil
}

// NewLogger builds a logger writing to console (when not nil) and to the
// configured file. With neither it returns a disabled logger.
func (cfg LogConfig) NewLogger(console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := cfg.level()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, NoColor: true})
	}

	var closer io.Closer = io.NopCloser(nil)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}
	return buildLogger(level, io.MultiWriter(writers...)), closer, nil
}

func buildLogger(level zerolog.Level, writer io.Writer) zerolog.Logger {
	return zerolog.New(writer).Level(level).With().Str("context", "app").Timestamp().Logger()
}
