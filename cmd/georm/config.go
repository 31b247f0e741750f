package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/syssam/georm/compiler/gen"
)

// DefaultConfigFile is read from the working directory when -config is
// not given.
const DefaultConfigFile = "georm.yaml"

// Config is the content of a georm.yaml file. Command line flags override
// its values.
type Config struct {
	// Patterns are the packages to generate, as accepted by the go command.
	Patterns []string `yaml:"patterns" validate:"dive,required"`
	// Target writes every file into one directory instead of next to the
	// entity declarations.
	Target   string   `yaml:"target"`
	Header   string   `yaml:"header"`
	Features []string `yaml:"features" validate:"dive,required"`
	Workers  int      `yaml:"workers" validate:"gte=0"`
	Verbose  bool     `yaml:"verbose"`
	Watch    Watch    `yaml:"watch"`
}

// Watch configures the -watch mode.
type Watch struct {
	// Debounce is the quiet period after the last change before
	// regenerating.
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// defaultDebounce applies when the config leaves watch.debounce unset.
const defaultDebounce = 200 * time.Millisecond

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadConfig reads the config file at path. A missing default config file
// yields an empty config; a missing explicit one is an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	cfg := &Config{}
	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()
	if err := decodeConfig(f, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig decodes YAML into cfg, rejecting unknown keys. An empty
// document leaves cfg unchanged.
func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the field constraints of the config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// debounce returns the configured debounce period or the default one.
func (c *Config) debounce() time.Duration {
	if c.Watch.Debounce > 0 {
		return c.Watch.Debounce
	}
	return defaultDebounce
}

// Options converts the config into generator options.
func (c *Config) Options(logger *slog.Logger) []gen.Option {
	opts := []gen.Option{
		gen.WithFeatureNames(c.Features...),
		gen.WithWorkers(c.Workers),
		gen.WithLogger(logger),
	}
	if c.Target != "" {
		opts = append(opts, gen.WithTarget(c.Target))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	return opts
}
