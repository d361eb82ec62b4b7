package module

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/orb/errors"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel  = "ORB_LOG_LEVEL"
	EnvLogFormat = "ORB_LOG_FORMAT"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls the logger a module runs with.
type Config struct {
	Format string
	Level  zapcore.Level
}

// DefaultConfig logs at info level to the console.
func DefaultConfig() Config {
	return Config{Level: zapcore.InfoLevel, Format: FormatConsole}
}

// LoadConfig reads the logging configuration from the environment.
// Unset variables keep their defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, errors.Wrap(errors.PhaseModule, errors.KindInvalidInput, err, EnvLogLevel)
		}
		cfg.Level = level
	}

	switch v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))); v {
	case "":
	case FormatConsole, FormatJSON:
		cfg.Format = v
	default:
		return cfg, errors.InvalidInput(errors.PhaseModule, EnvLogFormat+": unknown format "+v)
	}

	return cfg, nil
}

// NewLogger builds a logger named after the module.
func (c Config) NewLogger(name string) (*zap.Logger, error) {
	var zc zap.Config
	if c.Format == FormatJSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(c.Level)
	zc.DisableStacktrace = true
	zc.Sampling = nil

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseModule, errors.KindInvalidInput, err, "build logger")
	}
	return l.Named(name), nil
}
