// Command georm generates database access code for the entities declared in
// Go packages.
//
// Usage:
//
//	georm [-config georm.yaml] [-out dir] [-features list] [-watch] [-v] [patterns...]
//
// It is typically run through go:generate next to the entity declarations:
//
//	//go:generate go run github.com/syssam/georm/cmd/georm .
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/syssam/georm/compiler"
	"github.com/syssam/georm/compiler/gen/sql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "georm:", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, generates once and, with -watch, keeps regenerating
// until ctx is done.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("georm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to the config file (default "+DefaultConfigFile+" if present)")
	out := fs.String("out", "", "write every generated file into this directory")
	features := fs.String("features", "", "comma separated features to enable: fallback-upsert, strict-relations, snapshot")
	watchMode := fs.Bool("watch", false, "regenerate when an entity source file changes")
	verbose := fs.Bool("v", false, "log every generated file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		cfg.Patterns = fs.Args()
	}
	if *out != "" {
		cfg.Target = *out
	}
	if *features != "" {
		cfg.Features = splitList(*features)
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"."}
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	generate := func(ctx context.Context) ([]string, error) {
		graph, err := compiler.LoadGraph(ctx, cfg.Patterns, cfg.Options(logger)...)
		if err != nil {
			return nil, err
		}
		written, err := sql.GenerateFiles(ctx, graph)
		if err != nil {
			return nil, err
		}
		logger.Info("georm: generation done", "entities", len(graph.Nodes), "written", len(written))
		var dirs []string
		for _, t := range graph.Nodes {
			if t.Dir != "" && !slices.Contains(dirs, t.Dir) {
				dirs = append(dirs, t.Dir)
			}
		}
		return dirs, nil
	}

	dirs, err := generate(ctx)
	if err != nil {
		return err
	}
	if !*watchMode {
		return nil
	}
	return watch(ctx, dirs, cfg.debounce(), logger, generate)
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
