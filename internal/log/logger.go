/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package log provides centralized slog-based logging for the application:
// a console handler (pretty or JSON) on stderr, an optional rotating JSON
// file, and static attributes identifying the app, version and session.
package log

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	lj "gopkg.in/natefinch/lumberjack.v2"

	"circleviewer/internal/version"
)

// AppName is attached to every record as "app".
const AppName = "circleviewer"

// Environment variables read by FromEnv.
const (
	EnvLevel  = "CV_LOG_LEVEL"  // debug|info|warn|error
	EnvFormat = "CV_LOG_FORMAT" // console|json
	EnvSource = "CV_LOG_SOURCE" // true|false
	EnvFile   = "CV_LOG_FILE"   // path; enables rotated JSON file logging
)

// Options controls logger initialization. Zero value: INFO, console, no
// source, no file.
type Options struct {
	Level     string
	Format    string // "console" or "json"
	AddSource bool
	File      string
}

var (
	mu        sync.RWMutex
	logger    *slog.Logger
	sessionID = uuid.NewString()
)

// SessionID identifies this process run in logs and crash reports.
func SessionID() string { return sessionID }

// L returns the application logger, initializing from env on first use.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init configures the global logger and sets slog.Default as well.
func Init(opts Options) {
	lvl := ParseLevel(opts.Level)
	ho := &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(os.Stderr, ho)
	} else {
		console = newPrettyHandler(os.Stderr, lvl, opts.AddSource)
	}
	handlers := []slog.Handler{console}

	if f := strings.TrimSpace(opts.File); f != "" {
		w := &lj.Logger{Filename: f, MaxSize: 5, MaxBackups: 3, MaxAge: 14, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(w, ho))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = fanout(handlers)
	}
	l := slog.New(h).With(
		slog.String("app", AppName),
		slog.String("ver", version.Version),
		slog.String("session", sessionID),
	)

	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// FromEnv builds Options from the CV_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:     getenv(EnvLevel, "info"),
		Format:    getenv(EnvFormat, "console"),
		AddSource: parseBool(os.Getenv(EnvSource)),
		File:      os.Getenv(EnvFile),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// WithComponent returns a logger with the component attribute pre-set.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation annotates the logger with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

// ParseLevel converts a level name to slog.Level; unknown names mean INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make(fanout, len(f))
	for i, h := range f {
		res[i] = h.WithAttrs(attrs)
	}
	return res
}

func (f fanout) WithGroup(name string) slog.Handler {
	res := make(fanout, len(f))
	for i, h := range f {
		res[i] = h.WithGroup(name)
	}
	return res
}
