// Package logging builds the zap logger used for CLI diagnostics on stderr.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "warn"

// Options selects the level for New. Level precedence: Verbose, then the
// LOG_LEVEL environment variable, then Level, then warn.
type Options struct {
	Level   string
	Verbose bool
	Output  io.Writer
}

// New constructs a console logger writing to opts.Output (stderr by default).
func New(opts Options) *zap.Logger {
	level := ParseLevel(defaultLevel)
	if configured := strings.TrimSpace(opts.Level); configured != "" {
		level = ParseLevel(configured)
	}
	if env := strings.TrimSpace(os.Getenv("LOG_LEVEL")); env != "" {
		level = ParseLevel(env)
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Named("when")
}

// ParseLevel parses a level name, falling back to warn when it is invalid.
func ParseLevel(value string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(value)))); err != nil {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}
	return level
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
