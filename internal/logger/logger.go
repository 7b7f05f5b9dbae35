// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across go-cloud-vault.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on the
// wrapper. Request-scoped loggers travel in the context and are recovered
// with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to os.Stdout. role labels the
// emitting component ("server", "client") on every entry. level is a zerolog
// level name ("debug", "info", ...); unknown or empty values select info.
func NewLogger(role, level string) *Logger {
	return &Logger{newZerolog(os.Stdout, role, level)}
}

// NewFileLogger constructs a logger appending to path. The vault client runs
// a terminal UI on stdout, so its logs have to go to a file. If the file
// cannot be opened the logger silently discards output rather than break the
// UI.
func NewFileLogger(path, role, level string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "vault.log")
	}

	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Nop()
	}
	return &Logger{newZerolog(out, role, level)}
}

func newZerolog(out io.Writer, role, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return zerolog.New(out).Level(parsed).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
// The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest recovers the request-scoped logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext recovers the logger attached to ctx. zerolog falls back to its
// global logger when none is attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
