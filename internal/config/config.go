// SPDX-License-Identifier: MIT

// Package config loads the lvlalg command configuration.
//
// Priority, highest first: command-line flags bound with BindFlag, LVLALG_*
// environment variables, the YAML file given to Load, and the defaults below.
//
//	epsilon: 1e-8
//	log_level: info
//	log_format: console
//	precision: 4
//	method: gauss-jordan
//	workers: 4
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlalg/internal/logging"
	"github.com/katalvlaran/lvlalg/linsys"
	"github.com/katalvlaran/lvlalg/matrix"
)

// EnvPrefix is prepended to every environment variable, e.g. LVLALG_EPSILON.
const EnvPrefix = "LVLALG"

// Keys understood in files, environment and flags.
const (
	KeyEpsilon   = "epsilon"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyPrecision = "precision"
	KeyMethod    = "method"
	KeyWorkers   = "workers"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective command configuration.
type Config struct {
	Epsilon   float64 `mapstructure:"epsilon" yaml:"epsilon"`
	LogLevel  string  `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string  `mapstructure:"log_format" yaml:"log_format"`
	Precision int     `mapstructure:"precision" yaml:"precision"`
	Method    string  `mapstructure:"method" yaml:"method"`
	Workers   int     `mapstructure:"workers" yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Epsilon:   matrix.DefaultEpsilon,
		LogLevel:  "info",
		LogFormat: logging.FormatConsole,
		Precision: matrix.DefaultPrecision,
		Method:    linsys.MethodGaussJordan.String(),
		Workers:   4,
	}
}

// NewViper returns a viper instance with defaults and environment binding
// in place. Each command run gets its own instance.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyEpsilon, d.Epsilon)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyPrecision, d.Precision)
	v.SetDefault(KeyMethod, d.Method)
	v.SetDefault(KeyWorkers, d.Workers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (YAML) when non-empty, then unmarshals and validates.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon %v: %w", c.Epsilon, ErrInvalidConfig)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d not in [0,17]: %w", c.Precision, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := linsys.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("method %q: %w", c.Method, ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalidConfig)
	}

	return nil
}

// SolveMethod returns the parsed Method; Validate has already accepted it.
func (c Config) SolveMethod() linsys.Method {
	m, err := linsys.ParseMethod(c.Method)
	if err != nil {
		return linsys.MethodGaussJordan
	}

	return m
}
