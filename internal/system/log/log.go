/*
 * Copyright (c) 2025, Veritag Labs. (https://veritag.io).
 *
 * Veritag Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package log provides a structured wrapper around the slog package.
package log

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/veritag/veritag/internal/system/constants"
)

var (
	rootLogger *Logger
	rootOnce   sync.Once
)

// Logger is a structured logger backed by slog.
type Logger struct {
	internal *slog.Logger
}

// GetLogger returns the process-wide logger, creating it on first use.
// The log level and output format are read from the environment.
func GetLogger() *Logger {
	rootOnce.Do(func() {
		rootLogger = &Logger{internal: slog.New(newRootHandler())}
	})
	return rootLogger
}

// newRootHandler builds the slog handler from environment settings.
// An unparsable level falls back to the default rather than failing startup.
func newRootHandler() slog.Handler {
	levelName := os.Getenv(constants.LogLevelEnvironmentVariable)
	if levelName == "" {
		levelName = constants.DefaultLogLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(os.Getenv(constants.LogFormatEnvironmentVariable), "json") {
		return slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.NewTextHandler(os.Stdout, opts)
}

// With returns a logger that includes the given fields on every record.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{internal: l.internal.With(fieldsToAttrs(fields)...)}
}

// IsDebugEnabled reports whether debug records would be emitted.
func (l *Logger) IsDebugEnabled() bool {
	return l.internal.Handler().Enabled(context.Background(), slog.LevelDebug)
}

// Debug logs a debug message with custom fields.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.internal.Debug(msg, fieldsToAttrs(fields)...)
}

// Info logs an informational message with custom fields.
func (l *Logger) Info(msg string, fields ...Field) {
	l.internal.Info(msg, fieldsToAttrs(fields)...)
}

// Warn logs a warning message with custom fields.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.internal.Warn(msg, fieldsToAttrs(fields)...)
}

// Error logs an error message with custom fields.
func (l *Logger) Error(msg string, fields ...Field) {
	l.internal.Error(msg, fieldsToAttrs(fields)...)
}

// Fatal logs an error message with custom fields and exits the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.internal.Error(msg, fieldsToAttrs(fields)...)
	os.Exit(1)
}

func fieldsToAttrs(fields []Field) []any {
	attrs := make([]any, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	return attrs
}

// MaskString masks a sensitive value for logging, keeping only the first
// and last characters of longer strings.
func MaskString(s string) string {
	if len(s) <= 3 {
		return strings.Repeat("*", len(s))
	}
	return s[:1] + strings.Repeat("*", len(s)-2) + s[len(s)-1:]
}
