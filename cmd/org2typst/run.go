package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	org2typst "github.com/alnah/go-org2typst"
	"github.com/alnah/go-org2typst/internal/config"
	"github.com/alnah/go-org2typst/internal/fileutil"
	"github.com/alnah/go-org2typst/internal/hints"
	"github.com/alnah/go-org2typst/internal/yamlutil"
)

// Sentinel errors for argument and run validation.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoOrgFiles         = errors.New("no .org files found")
	ErrLintFindings       = errors.New("lint reported warnings")
	ErrConversionsFailed  = errors.New("conversions failed")
)

// runMain runs the command and maps the outcome to an exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "org2typst: %v\n", err)
	}
	return exitCodeFor(err)
}

// run is the testable body of main. args includes the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch {
	case flags.mode.help:
		printUsage(env.Stdout)
		return nil
	case flags.mode.version:
		fmt.Fprintf(env.Stdout, "org2typst %s\n", Version)
		return nil
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := resolveConfig(flags, loadEnvConfig(env.Getenv))
	if err != nil {
		return err
	}

	if flags.mode.printConfig {
		out, err := yamlutil.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	if len(positional) == 0 {
		return fmt.Errorf("%w: expected <source> [destination]", ErrNoInput)
	}
	if len(positional) > 2 {
		return fmt.Errorf("%w: got %d, expected <source> [destination]", ErrTooManyArgs, len(positional))
	}
	src := positional[0]
	dst := ""
	if len(positional) == 2 {
		dst = positional[1]
	}

	resolved, err := fileutil.ResolveSource(src)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForPathResolution(src))
	}

	rep := newReporter(env.Stderr, env.IsTTY, flags.common.quiet)

	if flags.mode.lint {
		return runLint(resolved, rep)
	}

	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	job := &runJob{
		conv:    conv,
		cfg:     cfg,
		src:     resolved,
		dst:     dst,
		isDir:   fileutil.IsDir(resolved),
		env:     env,
		rep:     rep,
		logger:  logger,
		verbose: flags.common.verbose,
	}

	if err := job.convertAll(ctx); err != nil {
		if !flags.mode.watch {
			return err
		}
		logger.Warn("initial conversion failed", slog.String("error", err.Error()))
	}

	if flags.mode.watch {
		return job.watch(ctx)
	}
	return nil
}

// resolveConfig builds the effective configuration:
// flags > environment > config file > defaults.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if flags.set["workers"] {
		if err := validateWorkers(flags.workers); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags over cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.set["author"] {
		cfg.Document.DefaultAuthor = flags.document.author
	}
	if flags.set["bibliography"] {
		cfg.Bibliography.File = flags.document.bibliography
	}
	if flags.set["keep-cite-sigil"] {
		cfg.Bibliography.KeepSigil = flags.document.keepCiteSigil
	}
	if flags.set["template"] {
		cfg.Template.Name = flags.assets.template
	}
	if flags.set["asset-path"] {
		cfg.Template.AssetPath = flags.assets.assetPath
	}
	if flags.set["workers"] {
		cfg.Workers = flags.workers
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// newConverter builds the library converter from cfg.
func newConverter(cfg *config.Config, logger *slog.Logger) (*org2typst.Converter, error) {
	opts := []org2typst.Option{
		org2typst.WithDefaultAuthor(cfg.Document.DefaultAuthor),
		org2typst.WithBibliography(cfg.Bibliography.File),
		org2typst.WithCitationSigil(cfg.Bibliography.KeepSigil),
		org2typst.WithLogger(logger),
	}
	if cfg.Template.Name != "" {
		opts = append(opts, org2typst.WithTemplate(cfg.Template.Name))
	}
	if cfg.Template.AssetPath != "" {
		opts = append(opts, org2typst.WithAssetPath(cfg.Template.AssetPath))
	}

	conv, err := org2typst.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, org2typst.ErrTemplateNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(availableTemplates(cfg.Template.AssetPath)))
		}
		return nil, err
	}
	return conv, nil
}
