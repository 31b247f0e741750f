package gen

import (
	"errors"
	"log/slog"

	"github.com/syssam/georm/dialect"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
// Without it, files are written next to their entity declarations.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithDialect sets the SQL dialect of the generated statements.
// Only "postgres" is supported.
func WithDialect(name string) Option {
	return func(c *Config) error {
		d, err := dialect.Normalize(name)
		if err != nil {
			return NewConfigError("Dialect", name, "unsupported dialect; use postgres")
		}
		c.Dialect = d
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name, as given on the command line
// or in a config file.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithWorkers sets the number of files rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	c.defaults()
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
