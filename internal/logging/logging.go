// SPDX-License-Identifier: MIT

// Package logging builds the zap logger behind the lvmst command and adapts
// it to the logr.Logger the solvers accept.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by New.
const (
	LevelError = "err"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "dbg"
)

// Format names accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	// ErrUnknownLevel indicates a level name outside Levels().
	ErrUnknownLevel = errors.New("logging: unknown level")

	// ErrUnknownFormat indicates a format name other than console or json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Levels lists the level names from least to most verbose.
func Levels() []string {
	return []string{LevelError, LevelWarn, LevelInfo, LevelDebug}
}

// ParseLevel maps a level name to its zap level. Matching ignores case.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(name) {
	case LevelError:
		return zap.ErrorLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelInfo:
		return zap.InfoLevel, nil
	case LevelDebug:
		return zap.DebugLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}
}

// New builds a zap logger writing to stderr at the given level.
// The console format is human-oriented; json is one object per line.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	switch strings.ToLower(format) {
	case FormatConsole:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	case FormatJSON:
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

// Logr wraps z for the solvers. logr V(1) lines map to zap's debug level, so
// per-edge solver traces only show up at LevelDebug.
func Logr(z *zap.Logger) logr.Logger {
	return zapr.NewLogger(z)
}
