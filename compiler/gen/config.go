package gen

import (
	"log/slog"
	"runtime"
	"slices"

	"github.com/syssam/georm/dialect"
)

// DefaultHeader is written at the top of every generated file.
const DefaultHeader = "Code generated by georm. DO NOT EDIT."

// Config holds the code generation settings.
type Config struct {
	// Target overrides the output directory. When empty, each entity's
	// file is written next to the source file that declares it.
	Target string

	// Header is the comment written above the package clause of every
	// generated file.
	Header string

	// Dialect is the SQL dialect of the generated statements.
	Dialect string

	// Features that are enabled in addition to the default ones.
	Features []Feature

	// Workers bounds the number of files rendered in parallel.
	Workers int

	// Logger receives diagnostics and progress messages.
	Logger *slog.Logger
}

// FeatureEnabled reports whether the named feature is enabled, either
// explicitly or by default.
func (c *Config) FeatureEnabled(name string) bool {
	if slices.ContainsFunc(c.Features, func(f Feature) bool { return f.Name == name }) {
		return true
	}
	for _, f := range AllFeatures {
		if f.Name == name {
			return f.Default
		}
	}
	return false
}

// logger returns the configured logger or the default one.
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// workers returns the configured worker count or GOMAXPROCS.
func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c *Config) defaults() {
	if c.Header == "" {
		c.Header = DefaultHeader
	}
	if c.Dialect == "" {
		c.Dialect = dialect.Postgres
	}
}
