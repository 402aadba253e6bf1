// SPDX-License-Identifier: MIT

// Command labyrinth prints a freshly generated maze.
//
//	labyrinth [WxH] [-a dfs|kruskal|prim|wilson] [-s] [-seed N] [-trace] [-env FILE]
//
// Defaults come from the environment (see package config); flags override
// them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solve"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line.
type options struct {
	width, height int
	algorithm     string
	solve         bool
	seed          int64
	trace         bool
	envFile       string
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	envFile := lookupEnvFile(args)
	var (
		cfg config.Config
		err error
	)
	if envFile != "" {
		cfg, err = config.Load(envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cfg.ConfigureLogger(log)

	opts, err := parseArgs(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err = cfg.CheckDimensions(opts.width, opts.height); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	genOpts := []generate.Option{generate.WithLogger(log)}
	if opts.seed != 0 {
		genOpts = append(genOpts, generate.WithSeed(opts.seed))
	}
	if opts.trace {
		r := render.NewLogRenderer(log, render.WithDelay(cfg.TraceDelay))
		genOpts = append(genOpts, generate.WithListener(render.Listener(r)))
	}
	gen, err := generate.NewByName(opts.algorithm, genOpts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	m, err := maze.New(opts.width, opts.height, gen)
	if err != nil {
		log.WithError(err).Error("generation failed")
		return 1
	}

	var path []*grid.Cell
	if opts.solve {
		if path, err = solve.Solve(m); err != nil {
			log.WithError(err).Error("solving failed")
			return 1
		}
	}
	fmt.Fprint(stdout, m.Render(path))

	return 0
}

// parseArgs accepts flags before and after the optional WxH argument.
func parseArgs(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	opts := options{width: cfg.Width, height: cfg.Height}

	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.algorithm, "a", cfg.Algorithm.String(), "generation algorithm: "+algorithmNames())
	fs.BoolVar(&opts.solve, "s", false, "show the solution")
	fs.Int64Var(&opts.seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&opts.trace, "trace", false, "log every generation step")
	fs.StringVar(&opts.envFile, "env", "", "load settings from this .env file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: labyrinth [WxH] [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	rest := fs.Args()
	if len(rest) > 0 {
		w, h, err := parseDimensions(rest[0])
		if err != nil {
			return opts, err
		}
		opts.width, opts.height = w, h
		if err = fs.Parse(rest[1:]); err != nil {
			return opts, err
		}
		if fs.NArg() > 0 {
			return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
	}

	return opts, nil
}

// parseDimensions parses "WxH", e.g. "10x20".
func parseDimensions(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("dimensions %q must contain exactly one \"x\"", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("height in %q: %w", s, err)
	}

	return w, h, nil
}

// lookupEnvFile finds -env before flags are parsed, since the file supplies
// the flag defaults.
func lookupEnvFile(args []string) string {
	for i, a := range args {
		switch {
		case a == "-env" || a == "--env":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-env="), strings.HasPrefix(a, "--env="):
			return a[strings.Index(a, "=")+1:]
		}
	}

	return ""
}

func algorithmNames() string {
	var names []string
	for _, a := range generate.Algorithms() {
		names = append(names, a.String())
	}

	return strings.Join(names, ", ")
}
