// Package runner executes the external programs expressor depends on,
// such as git and the project's package manager.
package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/validation"
)

// AllowedCommands lists the programs expressor may start.
var AllowedCommands = map[string]bool{
	"git":  true,
	"npm":  true,
	"pnpm": true,
	"yarn": true,
	"bun":  true,
}

// Runner runs a program in a working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner starts real processes. Commands run without a timeout.
type ExecRunner struct {
	logger  logging.Logger
	allowed map[string]bool
}

// NewExecRunner creates a runner that only executes AllowedCommands.
func NewExecRunner(logger logging.Logger) *ExecRunner {
	if logger == nil {
		logger = logging.Nop()
	}

	return &ExecRunner{
		logger:  logger.WithComponent("runner"),
		allowed: AllowedCommands,
	}
}

// Run executes name with args in dir and returns its combined output.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))

	if err := validation.ValidateCommand(name, r.allowed); err != nil {
		return nil, errors.NewExternalProcessError(errors.ErrCodeCommandNotAllowed, line, "", err)
	}

	r.logger.Debug(ctx, "Running command", "command", line, "dir", dir)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.Bytes(), errors.NewExternalProcessError(errors.ErrCodeCommandFailed, line, out.String(), err)
	}

	return out.Bytes(), nil
}
