//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads lined settings from defaults, a YAML file,
// LINED_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nobel-von-it/test-test-editing/editor"
	"github.com/nobel-von-it/test-test-editing/logging"
	"github.com/nobel-von-it/test-test-editing/screen"
	gott "github.com/nobel-von-it/test-test-editing/types"
)

// EnvPrefix is prepended to environment variable names, e.g. LINED_MARKER.
const EnvPrefix = "LINED"

var (
	ErrEmptyMarker     = errors.New("marker must not be empty")
	ErrInvalidAlign    = errors.New("invalid align")
	ErrInvalidBackend  = errors.New("invalid backend")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config represents the complete lined configuration
type Config struct {
	// Marker is drawn where the next typed character will land
	Marker string `mapstructure:"marker"`
	// Align places the line in the "center" of the screen or at the "left" edge
	Align string `mapstructure:"align"`
	// Backend selects the terminal toolkit: "termbox" or "tcell"
	Backend string `mapstructure:"backend"`
	// Debug shows the cursor index next to the line
	Debug bool      `mapstructure:"debug"`
	Log   LogConfig `mapstructure:"log"`
}

// LogConfig controls the log file
type LogConfig struct {
	// File is the log file path; empty disables logging
	File string `mapstructure:"file"`
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Marker:  editor.DefaultMarker,
		Align:   gott.AlignCenter,
		Backend: screen.BackendTermbox,
		Log: LogConfig{
			File:  DefaultLogFile(),
			Level: logging.LevelInfo,
		},
	}
}

// SetDefaults registers the defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("marker", d.Marker)
	v.SetDefault("align", d.Align)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Setup prepares v to read the config file and the environment.
// An explicit file overrides the search path.
func Setup(v *viper.Viper, file string) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the config file if there is one and returns the validated configuration.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Marker == "" {
		return ErrEmptyMarker
	}
	switch c.Align {
	case gott.AlignCenter, gott.AlignLeft:
	default:
		return fmt.Errorf("%w: %q (use %q or %q)", ErrInvalidAlign, c.Align, gott.AlignCenter, gott.AlignLeft)
	}
	switch c.Backend {
	case screen.BackendTermbox, screen.BackendTcell:
	default:
		return fmt.Errorf("%w: %q (use %q or %q)", ErrInvalidBackend, c.Backend, screen.BackendTermbox, screen.BackendTcell)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "lined")
}

func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linedlog")
}
