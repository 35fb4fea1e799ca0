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
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// AppConfig is the optional per-user YAML configuration of the host window
// and the logger. Environment variables (prefix CV_) override file values.
// Geometry limits are fixed and deliberately absent here.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Window        WindowConfig  `yaml:"window"`
	Logging       LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Window:        WindowConfig{Width: 1200, Height: 800, MinWidth: 750, MinHeight: 480},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// EnvPrefix is prepended to every override variable, e.g. CV_WINDOW_WIDTH.
const EnvPrefix = "CV"

// envOverrides uses pointers so unset variables leave file values alone.
type envOverrides struct {
	WindowWidth  *int    `split_words:"true"`
	WindowHeight *int    `split_words:"true"`
	LogLevel     *string `split_words:"true"`
	LogFormat    *string `split_words:"true"`
	LogSource    *bool   `split_words:"true"`
	LogFile      *string `split_words:"true"`
}

//go:embed config.schema.json
var schemaJSON []byte

// ErrInvalidConfig wraps schema violations of the config file.
var ErrInvalidConfig = errors.New("invalid config file")

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "CircleViewer")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "CircleViewer")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "circleviewer")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "circleviewer")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present) and applies env overrides.
// On any error the returned config is still usable: defaults plus whatever
// could be applied.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		return cfg, errors.Join(err, applyEnvOverrides(&cfg))
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path. A missing file is not an error.
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	var fileErr error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		fileErr = fmt.Errorf("read config %s: %w", path, err)
	default:
		fileCfg, err := Parse(data)
		if err != nil {
			fileErr = fmt.Errorf("config %s: %w", path, err)
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, errors.Join(fileErr, err)
	}
	return cfg, fileErr
}

// Parse validates YAML bytes against the embedded schema and decodes them.
func Parse(data []byte) (AppConfig, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AppConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return AppConfig{}, fmt.Errorf("validate: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return AppConfig{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, e.g. for "circleviewer config".
func Marshal(cfg AppConfig) ([]byte, error) { return yaml.Marshal(cfg) }

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Window.Width > 0 {
		dst.Window.Width = src.Window.Width
	}
	if src.Window.Height > 0 {
		dst.Window.Height = src.Window.Height
	}
	if src.Window.MinWidth > 0 {
		dst.Window.MinWidth = src.Window.MinWidth
	}
	if src.Window.MinHeight > 0 {
		dst.Window.MinHeight = src.Window.MinHeight
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	// booleans: copy directly from the file so user preferences persist
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *AppConfig) error {
	var o envOverrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return fmt.Errorf("env overrides: %w", err)
	}
	if o.WindowWidth != nil && *o.WindowWidth > 0 {
		cfg.Window.Width = *o.WindowWidth
	}
	if o.WindowHeight != nil && *o.WindowHeight > 0 {
		cfg.Window.Height = *o.WindowHeight
	}
	if o.LogLevel != nil && strings.TrimSpace(*o.LogLevel) != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*o.LogLevel))
	}
	if o.LogFormat != nil && strings.TrimSpace(*o.LogFormat) != "" {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(*o.LogFormat))
	}
	if o.LogSource != nil {
		cfg.Logging.Source = *o.LogSource
	}
	if o.LogFile != nil && strings.TrimSpace(*o.LogFile) != "" {
		cfg.Logging.File = strings.TrimSpace(*o.LogFile)
	}
	return nil
}

// EffectiveWindow clamps the configured size to the configured minimum.
func (w WindowConfig) EffectiveWindow() (width, height int) {
	width, height = w.Width, w.Height
	if width < w.MinWidth {
		width = w.MinWidth
	}
	if height < w.MinHeight {
		height = w.MinHeight
	}
	return width, height
}
