/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


// Package logging builds the structured loggers used by the weburl command.
// Loggers write to a caller-supplied writer, typically stderr, with a text or
// JSON handler. Debug level is enabled by flag or by the WEBURL_DEBUG
// environment variable.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "WEBURL_DEBUG"

// ErrUnknownFormat is returned by Format.Set for unsupported names.
var ErrUnknownFormat = errors.New("unknown log format")

// Format selects the slog handler. It implements pflag.Value.
type Format string

const (
	// FormatText uses slog.TextHandler.
	FormatText Format = "text"
	// FormatJSON uses slog.JSONHandler.
	FormatJSON Format = "json"
)

// String returns the format name.
func (f *Format) String() string {
	return string(*f)
}

// Set parses a format name, ignoring case.
func (f *Format) Set(s string) error {
	switch v := Format(strings.ToLower(s)); v {
	case FormatText, FormatJSON:
		*f = v
		return nil
	default:
		return fmt.Errorf("%w %q: want text or json", ErrUnknownFormat, s)
	}
}

// Type returns the flag type name shown in help output.
func (f *Format) Type() string {
	return "format"
}

// New returns a logger writing to w. Debug enables slog.LevelDebug; otherwise
// the level is slog.LevelInfo.
func New(w io.Writer, debug bool, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// DebugFromEnv reports whether EnvDebug is set to "true".
func DebugFromEnv() bool {
	return os.Getenv(EnvDebug) == "true"
}

// WithOperation scopes l to a component and an operation.
func WithOperation(l *slog.Logger, component, operation string) *slog.Logger {
	return l.With("component", component, "operation", operation)
}
