// SPDX-License-Identifier: MIT
// Package: stencilkit/cmd/stencilkit
//
// config.go — YAML configuration loaded through viper.
//
// Precedence (highest first): changed flags, STENCILKIT_* env, config file,
// defaults set in setDefaults.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/katalvlaran/stencilkit/results"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. STENCILKIT_FIELD_NX.
const EnvPrefix = "STENCILKIT"

// DefaultConfigFile is read (and created when missing) unless --config says otherwise.
const DefaultConfigFile = "stencilkit.yaml"

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("invalid configuration")

// FieldConfig describes the generated field.
type FieldConfig struct {
	NZ        int    `mapstructure:"nz" yaml:"nz"`
	NY        int    `mapstructure:"ny" yaml:"ny"`
	NX        int    `mapstructure:"nx" yaml:"nx"`
	Halo      int    `mapstructure:"halo" yaml:"halo"`
	Pattern   string `mapstructure:"pattern" yaml:"pattern"`
	AxisOrder string `mapstructure:"axis_order" yaml:"axis_order"`
	Layout    string `mapstructure:"layout" yaml:"layout"`
	DType     string `mapstructure:"dtype" yaml:"dtype"`
	Seed      int64  `mapstructure:"seed" yaml:"seed"`
}

// ResultsConfig locates the timing log.
type ResultsConfig struct {
	File   string `mapstructure:"file" yaml:"file"`
	Header bool   `mapstructure:"header" yaml:"header"`
}

// BenchConfig drives the bench command.
type BenchConfig struct {
	Repeat int     `mapstructure:"repeat" yaml:"repeat"`
	Number int     `mapstructure:"number" yaml:"number"`
	Iters  int     `mapstructure:"iters" yaml:"iters"`
	Alpha  float64 `mapstructure:"alpha" yaml:"alpha"`
}

// LogConfig sets the logger level.
type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// PlotConfig sets the plot output.
type PlotConfig struct {
	Output string `mapstructure:"output" yaml:"output"`
}

// Config is the whole file.
type Config struct {
	Field   FieldConfig   `mapstructure:"field" yaml:"field"`
	Results ResultsConfig `mapstructure:"results" yaml:"results"`
	Bench   BenchConfig   `mapstructure:"bench" yaml:"bench"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Plot    PlotConfig    `mapstructure:"plot" yaml:"plot"`
}

// setDefaults registers a default for every key so env overrides apply even
// when the file omits the key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("field.nz", 16)
	v.SetDefault("field.ny", 64)
	v.SetDefault("field.nx", 64)
	v.SetDefault("field.halo", 2)
	v.SetDefault("field.pattern", field.DefaultPattern.String())
	v.SetDefault("field.axis_order", field.DefaultAxisOrder.String())
	v.SetDefault("field.layout", field.DefaultLayout.String())
	v.SetDefault("field.dtype", field.DefaultDType.String())
	v.SetDefault("field.seed", field.DefaultSeed)

	v.SetDefault("results.file", results.DefaultFile)
	v.SetDefault("results.header", true)

	v.SetDefault("bench.repeat", 7)
	v.SetDefault("bench.number", 1)
	v.SetDefault("bench.iters", 32)
	v.SetDefault("bench.alpha", 1.0/64)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.verbose", false)

	v.SetDefault("plot.output", "field.png")
}

// newViper returns a viper instance with defaults and env binding.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads path into v and unmarshals the merged settings.
// A missing file is not an error; created reports whether the defaults
// were written to path.
func loadConfig(v *viper.Viper, path string) (cfg *Config, created bool, err error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		cfg = &Config{}
		if err = v.Unmarshal(cfg); err != nil {
			return nil, false, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		if werr := saveDefaultConfig(path, defaultConfig()); werr != nil {
			return cfg, false, fmt.Errorf("could not save default config: %w", werr)
		}
		return cfg, true, nil
	}

	if err = v.ReadInConfig(); err != nil {
		return nil, false, fmt.Errorf("failed to read config: %w", err)
	}
	cfg = &Config{}
	if err = v.Unmarshal(cfg); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, false, nil
}

// defaultConfig returns the defaults alone, ignoring env and flags.
func defaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)

	return cfg
}

// saveDefaultConfig writes cfg as YAML with a generated header.
func saveDefaultConfig(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	header := "# stencilkit configuration\n# Generated on " +
		time.Now().Format("2006-01-02 15:04:05") + "\n\n"

	return os.WriteFile(path, []byte(header+string(data)), 0o644)
}

// fieldOptions converts the field section into Initialize options.
func (c *Config) fieldOptions() ([]field.Option, error) {
	pattern, err := field.ParsePattern(c.Field.Pattern)
	if err != nil {
		return nil, err
	}
	order, err := field.ParseAxisOrder(c.Field.AxisOrder)
	if err != nil {
		return nil, err
	}
	layout, err := field.ParseLayout(c.Field.Layout)
	if err != nil {
		return nil, err
	}
	dtype, err := field.ParseDType(c.Field.DType)
	if err != nil {
		return nil, err
	}

	return []field.Option{
		field.WithPattern(pattern),
		field.WithAxisOrder(order),
		field.WithLayout(layout),
		field.WithDType(dtype),
		field.WithHalo(c.Field.Halo),
		field.WithSeed(c.Field.Seed),
	}, nil
}

// validateBench rejects bench settings that Timeit or Diffuse cannot run with.
func (c *Config) validateBench() error {
	b := c.Bench
	switch {
	case b.Repeat < 1:
		return fmt.Errorf("bench.repeat=%d must be >= 1: %w", b.Repeat, ErrInvalidConfig)
	case b.Number < 1:
		return fmt.Errorf("bench.number=%d must be >= 1: %w", b.Number, ErrInvalidConfig)
	case b.Iters < 1:
		return fmt.Errorf("bench.iters=%d must be >= 1: %w", b.Iters, ErrInvalidConfig)
	}

	return nil
}

// axisOrder parses the configured axis order.
func (c *Config) axisOrder() (field.AxisOrder, error) {
	return field.ParseAxisOrder(c.Field.AxisOrder)
}

// newField builds the configured field.
func (c *Config) newField() (*field.Field, error) {
	opts, err := c.fieldOptions()
	if err != nil {
		return nil, err
	}

	return field.Initialize(c.Field.NZ, c.Field.NY, c.Field.NX, opts...)
}
