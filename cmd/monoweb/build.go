package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	monoweb "github.com/alnah/go-monoweb"
	"github.com/alnah/go-monoweb/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
)

// run dispatches the parsed command line. The default command is build.
func run(args []string, flags *cliFlags) error {
	command := "build"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "build":
		return runBuild(context.Background(), flags)
	case "serve":
		return runServe(context.Background(), flags)
	case "version":
		fmt.Println("monoweb " + Version)
		return nil
	case "help":
		printUsage(nil)
		return nil
	default:
		return fmt.Errorf("%w: %q (try \"monoweb help\")", ErrUnknownCommand, command)
	}
}

// loadSiteConfig resolves the effective configuration: file config if
// requested, defaults otherwise, CLI flags winning over both.
func loadSiteConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags win.
	if flags.site.input != "" {
		cfg.Input.File = flags.site.input
	}
	if flags.site.output != "" {
		cfg.Output.Dir = flags.site.output
	}
	if flags.site.static != "" {
		cfg.Static.Dir = flags.site.static
	}
	if flags.site.template != "" {
		cfg.Template.File = flags.site.template
	}
	if flags.serve.port != 0 {
		cfg.Server.Port = flags.serve.port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBuilder constructs the library builder from resolved configuration.
func newBuilder(cfg *config.Config, flags *cliFlags) (*monoweb.Builder, error) {
	opts := []monoweb.Option{}
	if !flags.common.quiet {
		opts = append(opts, monoweb.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}

	return monoweb.NewBuilder(monoweb.Paths{
		InputFile:    cfg.Input.File,
		TemplateFile: cfg.Template.File,
		StaticDir:    cfg.Static.Dir,
		OutputDir:    cfg.Output.Dir,
		AssetSubdir:  cfg.Output.AssetSubdir,
	}, opts...)
}

// runBuild performs a single site build.
func runBuild(ctx context.Context, flags *cliFlags) error {
	cfg, err := loadSiteConfig(flags)
	if err != nil {
		return err
	}

	b, err := newBuilder(cfg, flags)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		p := b.Paths()
		fmt.Fprintf(os.Stderr, "input: %s\noutput: %s\nstatic: %s\n", p.InputFile, p.OutputDir, p.StaticDir)
	}

	return b.Build(ctx)
}
