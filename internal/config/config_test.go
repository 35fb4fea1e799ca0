/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadFile_MissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadFile_MergesFile(t *testing.T) {
	p := writeConfig(t, `
config_version: 1
window:
  width: 900
logging:
  level: debug
  source: true
`)
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Window.Width != 900 || cfg.Window.Height != 800 {
		t.Fatalf("window not merged: %#v", cfg.Window)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Source || cfg.Logging.Format != "console" {
		t.Fatalf("logging not merged: %#v", cfg.Logging)
	}
}

func TestParse_SchemaRejects(t *testing.T) {
	for name, body := range map[string]string{
		"negative width": "window:\n  width: -4\n",
		"unknown level":  "logging:\n  level: loud\n",
		"unknown key":    "window:\n  depth: 3\n",
		"wrong type":     "logging:\n  source: \"maybe\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty document should be valid: %v", err)
	}
	if cfg != (AppConfig{}) {
		t.Fatalf("expected zero config, got %#v", cfg)
	}
}

func TestLoadFile_InvalidKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "window:\n  width: 0\n")
	cfg, err := LoadFile(p)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if cfg.Window.Width != Defaults().Window.Width {
		t.Fatalf("invalid file must not be merged: %#v", cfg.Window)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CV_WINDOW_WIDTH", "1024")
	t.Setenv("CV_LOG_LEVEL", " Error ")
	t.Setenv("CV_LOG_FORMAT", "json")
	t.Setenv("CV_LOG_SOURCE", "true")
	t.Setenv("CV_LOG_FILE", "/tmp/cv.log")
	p := writeConfig(t, "window:\n  width: 640\n  height: 700\n")

	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 700 {
		t.Fatalf("env should win over file: %#v", cfg.Window)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/tmp/cv.log" {
		t.Fatalf("logging overrides not applied: %#v", cfg.Logging)
	}
}

func TestEnvOverrides_BadValue(t *testing.T) {
	t.Setenv("CV_WINDOW_HEIGHT", "tall")
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "env overrides") {
		t.Fatalf("expected env override error, got %v", err)
	}
}

func TestEffectiveWindow(t *testing.T) {
	w, h := WindowConfig{Width: 500, Height: 900, MinWidth: 750, MinHeight: 480}.EffectiveWindow()
	if w != 750 || h != 900 {
		t.Fatalf("EffectiveWindow = %dx%d", w, h)
	}
}

func TestMarshalRoundTripsThroughSchema(t *testing.T) {
	data, err := Marshal(Defaults())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("defaults must satisfy the schema: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("round trip mismatch: %#v", cfg)
	}
}

func TestConfigPathUsesXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG applies to linux and other unix systems")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	p, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if p != filepath.Join(dir, "circleviewer", "config.yaml") {
		t.Fatalf("unexpected path %s", p)
	}
}
