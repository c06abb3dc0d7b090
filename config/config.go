// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the lvboot driver and
// maps it onto resample methods and scenario options.
//
// Example file:
//
//	method: Stationary
//	count: 1000
//	length: 0        # 0 = seed length
//	mean_block: 0    # Stationary; 0 = automatic
//	block: 0         # Circular;   0 = automatic
//	domain: returns  # returns | levels
//	seed: 42
//	workers: 0       # 0 = GOMAXPROCS
//	log:
//	  level: info
//	  format: dev    # dev | json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvboot/resample"
	"github.com/katalvlaran/lvboot/scenario"
)

// ErrInvalidConfig indicates a value that fails Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the driver configuration.
type Config struct {
	Method    string  `yaml:"method"`
	Count     int     `yaml:"count"`
	Length    int     `yaml:"length"`
	MeanBlock float64 `yaml:"mean_block"`
	Block     int     `yaml:"block"`
	Domain    string  `yaml:"domain"`
	Seed      int64   `yaml:"seed"`
	Workers   int     `yaml:"workers"`
	Log       Log     `yaml:"log"`
}

// Log configures the driver logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given: 1000
// stationary-bootstrap variants at the seed length.
func Default() Config {
	return Config{
		Method: resample.NameStationary,
		Count:  1000,
		Domain: resample.ReturnsDomain.String(),
		Seed:   resample.DefaultSeed,
		Log:    Log{Level: "info", Format: "dev"},
	}
}

// LoadFile reads path over Default and validates the result.
func LoadFile(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return Parse(buf)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Method) == "":
		return fmt.Errorf("method is empty: %w", ErrInvalidConfig)
	case c.Count < 1:
		return fmt.Errorf("count %d must be ≥ 1: %w", c.Count, ErrInvalidConfig)
	case c.Length < 0 || c.Length == 1:
		return fmt.Errorf("length %d must be 0 or ≥ 2: %w", c.Length, ErrInvalidConfig)
	case c.MeanBlock != 0 && c.MeanBlock < 1:
		return fmt.Errorf("mean_block %g must be 0 or ≥ 1: %w", c.MeanBlock, ErrInvalidConfig)
	case c.Block < 0:
		return fmt.Errorf("block %d must be ≥ 0: %w", c.Block, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers %d must be ≥ 0: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := c.domain(); err != nil {
		return err
	}
	return nil
}

// ResolveMethod resolves the configured method. Stationary, Circular and IID get
// the configured block parameters and domain; other names come from reg
// as registered.
func (c Config) ResolveMethod(reg *resample.Registry) (resample.Method, error) {
	d, err := c.domain()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(c.Method)) {
	case strings.ToLower(resample.NameStationary):
		return resample.Stationary{MeanBlock: c.MeanBlock, Domain: d}, nil
	case strings.ToLower(resample.NameCircular):
		return resample.Circular{Block: c.Block, Domain: d}, nil
	case strings.ToLower(resample.NameIID):
		return resample.IID{Domain: d}, nil
	}
	return reg.Lookup(c.Method)
}

// GeneratorOptions maps the configuration onto scenario options.
func (c Config) GeneratorOptions() []scenario.Option {
	return []scenario.Option{
		scenario.WithSeed(c.Seed),
		scenario.WithWorkers(c.Workers),
		scenario.WithLength(c.Length),
	}
}

func (c Config) domain() (resample.Domain, error) {
	switch strings.ToLower(strings.TrimSpace(c.Domain)) {
	case "", resample.ReturnsDomain.String():
		return resample.ReturnsDomain, nil
	case resample.LevelDomain.String():
		return resample.LevelDomain, nil
	default:
		return 0, fmt.Errorf("domain %q must be returns or levels: %w", c.Domain, ErrInvalidConfig)
	}
}
