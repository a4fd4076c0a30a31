// SPDX-License-Identifier: MIT
// Package: gematria/internal/config
//
// config.go: Config struct, defaults and Load.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "GEMATRIA"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all CLI settings.
type Config struct {
	Table     string        `mapstructure:"table" validate:"required"`
	Normalize string        `mapstructure:"normalize" validate:"required,oneof=fold marks none"`
	Policy    string        `mapstructure:"policy" validate:"omitempty,oneof=strict lenient"`
	Sentinel  string        `mapstructure:"sentinel" validate:"required"`
	Log       LogConfig     `mapstructure:"log"`
	Diagram   DiagramConfig `mapstructure:"diagram"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File, when set, receives a JSON copy of every record.
	File string `mapstructure:"file"`
}

// DiagramConfig controls the SVG diagram layout.
type DiagramConfig struct {
	Radius      float64 `mapstructure:"radius" validate:"gt=0"`
	InnerRadius float64 `mapstructure:"inner_radius" validate:"gt=0,ltfield=Radius"`
	SpokeLength float64 `mapstructure:"spoke_length" validate:"gt=0"`
	StartAngle  float64 `mapstructure:"start_angle" validate:"gte=-360,lte=360"`
	Scale       float64 `mapstructure:"scale" validate:"gt=0"`
	Triplets    bool    `mapstructure:"triplets"`
}

var defaults = map[string]any{
	"table":                "hebrew",
	"normalize":            "fold",
	"policy":               "",
	"sentinel":             "END",
	"log.level":            "warn",
	"log.file":             "",
	"diagram.radius":       8.0,
	"diagram.inner_radius": 3.0,
	"diagram.spoke_length": 5.5,
	"diagram.start_angle":  90.0,
	"diagram.scale":        30.0,
	"diagram.triplets":     false,
}

// Load merges defaults, the YAML file at path (skipped when empty), the
// environment and overrides (dotted keys, e.g. "log.level"), then validates.
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the validated built-in configuration, ignoring the
// environment.
func Default() *Config {
	return &Config{
		Table:     defaults["table"].(string),
		Normalize: defaults["normalize"].(string),
		Sentinel:  defaults["sentinel"].(string),
		Log:       LogConfig{Level: defaults["log.level"].(string)},
		Diagram: DiagramConfig{
			Radius:      defaults["diagram.radius"].(float64),
			InnerRadius: defaults["diagram.inner_radius"].(float64),
			SpokeLength: defaults["diagram.spoke_length"].(float64),
			StartAngle:  defaults["diagram.start_angle"].(float64),
			Scale:       defaults["diagram.scale"].(float64),
		},
	}
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
