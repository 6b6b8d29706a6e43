// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the shared logging capability for Velocitas
// package scripts, running either interactively or inside a CI host.
package logger

import (
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eclipse-velocitas/velocitas-lib-go/env"
)

// EnvStructuredLogs selects JSON log output when set to a true boolean
// value. The default is human-readable console output.
const EnvStructuredLogs = "VELOCITAS_STRUCTURED_LOGS"

// Debug logs a message at debug level using the singleton logger.
func Debug(msg string) {
	zap.S().Debug(msg)
}

// Debugf logs a formatted message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infof logs a formatted message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warn logs a message at warning level using the singleton logger.
func Warn(msg string) {
	zap.S().Warn(msg)
}

// Warnf logs a formatted message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Error logs a message at error level using the singleton logger.
func Error(msg string) {
	zap.S().Error(msg)
}

// Errorf logs a formatted message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Fatal logs a message at error level using the singleton logger and exits the program.
func Fatal(msg string) {
	zap.S().Fatal(msg)
}

// Fatalf logs a formatted message at error level using the singleton logger and exits the program.
func Fatalf(msg string, args ...any) {
	zap.S().Fatalf(msg, args...)
}

// Fatalw logs a message at error level using the singleton logger with additional key-value pairs and exits the program.
func Fatalw(msg string, keysAndValues ...any) {
	zap.S().Fatalw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger backed by the singleton zap logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider is an interface for checking if debug mode is enabled.
// This allows different hosts to plug in their own debug flag implementation.
type DebugProvider interface {
	IsDebug() bool
}

// defaultDebugProvider provides a default implementation that returns false.
type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// Initialize creates and configures the singleton logger using the
// process environment and the default debug provider. When
// VELOCITAS_STRUCTURED_LOGS is true, output is structured JSON on
// stdout; otherwise it is plain console output on stderr.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithDebug creates and configures the logger with a custom
// debug provider, e.g. one backed by a CLI verbose flag.
func InitializeWithDebug(debugProvider DebugProvider) {
	InitializeWithOptions(&env.OSReader{}, debugProvider)
}

// InitializeWithOptions creates and configures the logger with a custom
// environment reader and debug provider. This provides full control over
// logger configuration for both testing and production use.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	var config zap.Config
	if structuredLogsWithEnv(envReader) {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	}

	// Set log level based on current debug flag
	if debugProvider.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zap.ReplaceGlobals(zap.Must(config.Build()))
}

func structuredLogsWithEnv(envReader env.Reader) bool {
	structured, err := strconv.ParseBool(envReader.Getenv(EnvStructuredLogs))
	if err != nil {
		// the variable is unset, empty or not a boolean; console output
		// is the default for interactive script runs.
		return false
	}
	return structured
}
