// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the autosave server and client. Entries are
// JSON with "role", "time" and a "func" caller field; request and save paths
// pick their logger up from the context.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFileName is the file the client logs to, next to its executable.
// The terminal UI owns stdout.
const ClientLogFileName = "autosave-client.log"

type Logger struct {
	zerolog.Logger
}

var setGlobals sync.Once

func configureZerolog() {
	setGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// New returns a logger writing JSON entries tagged with role to out.
func New(out io.Writer, role string) *Logger {
	configureZerolog()

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger logs to stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger appends to [ClientLogPath], or logs to stderr when that
// file cannot be opened.
func NewClientLogger(role string) *Logger {
	f, err := os.OpenFile(ClientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return New(os.Stderr, role)
	}
	return New(f, role)
}

// ClientLogPath is [ClientLogFileName] in the executable's directory.
func ClientLogPath() string {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return filepath.Join(dir, ClientLogFileName)
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a copy that can be given more fields without touching l.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child tagged with "component".
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// FromRequest is [FromContext] for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext,
// or zerolog's default context logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
