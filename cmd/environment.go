package cmd

import (
	"os"

	"github.com/conneroisu/expressor/internal/artifact"
	"github.com/conneroisu/expressor/internal/bootstrap"
	"github.com/conneroisu/expressor/internal/config"
	"github.com/conneroisu/expressor/internal/generator"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/prompt"
	"github.com/conneroisu/expressor/internal/runner"
	"github.com/conneroisu/expressor/internal/templates"
	"github.com/conneroisu/expressor/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// environment is everything a command touches outside its own logic.
type environment struct {
	cfg      *config.Config
	fs       afero.Fs
	printer  *ui.Printer
	prompter prompt.Prompter
	runner   runner.Runner
	fetcher  bootstrap.Fetcher
	logger   logging.Logger
}

// environmentHook, when set, adjusts the environment before a command runs.
var environmentHook func(env *environment)

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})

	env := &environment{
		cfg:     cfg,
		fs:      afero.NewOsFs(),
		printer: ui.NewPrinter(cmd.OutOrStdout()),
		logger:  logger,
	}

	if cfg.NonInteractive {
		env.prompter = prompt.NonInteractive{}
	} else {
		env.prompter = prompt.NewTerminal(os.Stdin, os.Stdout)
	}

	env.runner = runner.NewExecRunner(logger)
	switch cfg.Bootstrap.Fetcher {
	case "go-git":
		env.fetcher = bootstrap.GitFetcher{}
	default:
		env.fetcher = bootstrap.NewCommandFetcher(env.runner)
	}

	if environmentHook != nil {
		environmentHook(env)
	}

	return env, nil
}

func (e *environment) generator() *generator.Generator {
	var provider templates.Provider = templates.NewEmbedProvider()
	if dir := e.cfg.Generator.TemplatesDir; dir != "" {
		provider = templates.ChainProvider{templates.NewDirProvider(e.fs, dir), provider}
	}

	return generator.New(
		e.prompter,
		templates.NewRenderer(provider),
		artifact.NewWriter(e.fs, e.cfg.Project.Root, e.cfg.Generator.Extension),
		e.printer,
		e.logger,
	)
}

func (e *environment) bootstrapper() *bootstrap.Bootstrapper {
	b := e.cfg.Bootstrap

	return bootstrap.New(e.fs, e.cfg.Project.Root, bootstrap.Options{
		Repository:     b.Repository,
		PackageManager: b.PackageManager,
		InstallArgs:    b.InstallArgs,
		Lockfile:       b.Lockfile,
		EnvExample:     b.EnvExample,
		EnvFile:        b.EnvFile,
	}, e.fetcher, e.runner, e.prompter, e.printer, e.logger)
}
