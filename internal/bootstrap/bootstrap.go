// Package bootstrap creates a new project from the remote template
// repository: make the directory, fetch the template, strip template-only
// files, install dependencies. Any failure removes the directory again.
package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/prompt"
	"github.com/conneroisu/expressor/internal/runner"
	"github.com/conneroisu/expressor/internal/ui"
	"github.com/conneroisu/expressor/internal/validation"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Question is asked when no project name is given.
const Question = "What is the name of your project?"

// CancelMessage is printed when the project name prompt is aborted.
const CancelMessage = "⚠ Cancelled."

// Options configures where the template comes from and how it is set up.
type Options struct {
	Repository     string
	PackageManager string
	InstallArgs    []string
	Lockfile       string
	EnvExample     string
	EnvFile        string
}

// Bootstrapper runs the new-project pipeline below a root directory.
type Bootstrapper struct {
	fs       afero.Fs
	root     string
	opts     Options
	fetcher  Fetcher
	runner   runner.Runner
	prompter prompt.Prompter
	printer  *ui.Printer
	logger   logging.Logger
}

// New creates a bootstrapper. Projects are created as <root>/<name>.
func New(fsys afero.Fs, root string, opts Options, f Fetcher, r runner.Runner, p prompt.Prompter, printer *ui.Printer, logger logging.Logger) *Bootstrapper {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.PackageManager == "" {
		opts.PackageManager = "npm"
	}
	if len(opts.InstallArgs) == 0 {
		opts.InstallArgs = []string{"install"}
	}

	return &Bootstrapper{
		fs:       fsys,
		root:     root,
		opts:     opts,
		fetcher:  f,
		runner:   r,
		prompter: p,
		printer:  printer,
		logger:   logger.WithComponent("bootstrap"),
	}
}

// Create scaffolds a project named rawName, prompting when it is empty,
// and returns the project directory.
func (b *Bootstrapper) Create(ctx context.Context, rawName string) (string, error) {
	b.printer.Banner(ui.Banner)

	name, err := prompt.Required(ctx, b.prompter, rawName, Question)
	if err != nil {
		var ee *errors.ExpressorError
		if stderrors.As(err, &ee) && ee.Type == errors.ErrorTypePromptCancelled {
			ee.WithMessage(CancelMessage)
		}
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", errors.NewInvalidNameError(errors.ErrCodeEmptyName, "Application can't create without name.").
			WithContext(errors.ContextCommand, "new")
	}
	if err := validation.ValidateProjectName(name); err != nil {
		return "", errors.NewInvalidNameError(errors.ErrCodeUnsafeName, err.Error())
	}

	appPath := filepath.Join(b.root, name)
	log := b.logger.With("project", name, "path", appPath)

	// Only a directory is ever cleaned up; an existing file is left alone.
	if info, err := b.fs.Stat(appPath); err == nil && !info.IsDir() {
		return "", errors.NewWriteError(errors.ErrCodeWriteFailed, appPath,
			fmt.Errorf("a file named %s already exists", name))
	}

	b.printer.Log(fmt.Sprintf("🚀 Creating %s...", name))

	if err := b.run(ctx, appPath); err != nil {
		log.Error(ctx, err, "Bootstrap failed, cleaning up")
		b.printer.ErrorLog("Failed! error: " + errors.UserMessage(err))
		b.cleanup(ctx, appPath)
		return "", errors.Reported(err)
	}

	log.Info(ctx, "Project created")
	b.output(name)

	return appPath, nil
}

func (b *Bootstrapper) run(ctx context.Context, appPath string) error {
	if err := b.fs.MkdirAll(appPath, 0o755); err != nil {
		return errors.NewWriteError(errors.ErrCodeWriteFailed, appPath, err)
	}

	if err := b.step("Downloading files ...", func() error {
		return b.fetcher.Fetch(ctx, b.opts.Repository, appPath)
	}); err != nil {
		return err
	}

	if err := b.step("Setting up files ...", func() error {
		return b.setupFiles(ctx, appPath)
	}); err != nil {
		return err
	}

	return b.step("Installing dependencies ...", func() error {
		_, err := b.runner.Run(ctx, appPath, b.opts.PackageManager, b.opts.InstallArgs...)
		return err
	})
}

func (b *Bootstrapper) step(message string, fn func() error) error {
	s := b.printer.Spinner(message)
	if err := fn(); err != nil {
		s.Fail()
		return err
	}
	s.Succeed()

	return nil
}

// setupFiles strips template-only files. The three operations run
// concurrently and all of them finish before dependencies are installed.
// Files that are already absent are fine.
func (b *Bootstrapper) setupFiles(ctx context.Context, appPath string) error {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		return b.fs.RemoveAll(filepath.Join(appPath, ".git"))
	})
	if b.opts.Lockfile != "" {
		g.Go(func() error {
			return ignoreNotExist(b.fs.Remove(filepath.Join(appPath, b.opts.Lockfile)))
		})
	}
	if b.opts.EnvExample != "" && b.opts.EnvFile != "" {
		g.Go(func() error {
			return ignoreNotExist(b.fs.Rename(
				filepath.Join(appPath, b.opts.EnvExample),
				filepath.Join(appPath, b.opts.EnvFile),
			))
		})
	}

	if err := g.Wait(); err != nil {
		return errors.NewWriteError(errors.ErrCodeWriteFailed, appPath, err)
	}

	return nil
}

// cleanup is best effort; a failure is logged and otherwise ignored.
func (b *Bootstrapper) cleanup(ctx context.Context, appPath string) {
	if err := b.fs.RemoveAll(appPath); err != nil {
		b.logger.Warn(ctx, err, "Cleanup failed", "path", appPath)
	}
}

func (b *Bootstrapper) output(name string) {
	pm := b.opts.PackageManager

	b.printer.Success("Your application is ready 🥳")
	b.printer.Log("Run your app with:")
	b.printer.Log("       cd " + name)
	b.printer.Log("       " + pm + " run dev")
	b.printer.Command("Project Build: ", pm+" run build")
	b.printer.Command("Project Start: ", pm+" start")
}

func ignoreNotExist(err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
