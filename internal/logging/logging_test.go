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


package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"Info by default", false, false},
		{"Debug enabled", true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := New(&buf, tt.debug, FormatText)
			logger.Debug("hidden unless debug")
			logger.Info("always shown")

			assert.Contains(t, buf.String(), "always shown")
			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "hidden unless debug"))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	WithOperation(New(&buf, false, FormatJSON), "cli", "parse").Info("parsed URL", "input", "example.com")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "parsed URL", entry["msg"])
	assert.Equal(t, "cli", entry["component"])
	assert.Equal(t, "parse", entry["operation"])
	assert.Equal(t, "example.com", entry["input"])
}

func TestFormat_Set(t *testing.T) {
	t.Parallel()
	f := FormatText
	require.NoError(t, f.Set("JSON"))
	assert.Equal(t, FormatJSON, f)
	assert.Equal(t, "json", f.String())
	assert.Equal(t, "format", f.Type())

	err := f.Set("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, FormatJSON, f)
}

//nolint:paralleltest // t.Setenv cannot be used in parallel tests.
func TestDebugFromEnv(t *testing.T) {
	t.Setenv(EnvDebug, "true")
	assert.True(t, DebugFromEnv())

	t.Setenv(EnvDebug, "1")
	assert.False(t, DebugFromEnv())

	t.Setenv(EnvDebug, "")
	assert.False(t, DebugFromEnv())
}
