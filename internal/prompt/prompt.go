// Package prompt resolves required values from a command argument or,
// failing that, from an interactive prompt.
package prompt

import (
	"context"
	"io"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/manifoldco/promptui"
)

// Prompter asks the user for one line of input.
type Prompter interface {
	Prompt(ctx context.Context, message string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, message string) (string, error)

// Prompt implements Prompter.
func (f PrompterFunc) Prompt(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}

// Terminal prompts on a terminal using promptui.
type Terminal struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewTerminal creates a terminal prompter. Nil streams default to the
// process stdin and stdout.
func NewTerminal(stdin io.ReadCloser, stdout io.WriteCloser) *Terminal {
	return &Terminal{stdin: stdin, stdout: stdout}
}

// Prompt implements Prompter. Ctrl-C and Ctrl-D cancel the prompt.
func (t *Terminal) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.NewPromptCancelledError(err)
	}

	p := promptui.Prompt{
		Label:  message,
		Stdin:  t.stdin,
		Stdout: t.stdout,
	}

	// promptui reports ^C as ErrInterrupt and ^D as ErrEOF; any failure to
	// read an answer aborts the command.
	value, err := p.Run()
	if err != nil {
		return "", errors.NewPromptCancelledError(err)
	}

	return value, nil
}

// NonInteractive never asks; it answers every prompt with an empty string
// so that a missing required value fails name validation.
type NonInteractive struct{}

// Prompt implements Prompter.
func (NonInteractive) Prompt(ctx context.Context, message string) (string, error) {
	return "", nil
}

// Static answers every prompt with the same value.
type Static string

// Prompt implements Prompter.
func (s Static) Prompt(ctx context.Context, message string) (string, error) {
	return string(s), nil
}

// Required returns arg when it is non-empty, otherwise asks p with
// message. The answer may still be empty; callers validate it.
func Required(ctx context.Context, p Prompter, arg, message string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if p == nil {
		return "", nil
	}

	value, err := p.Prompt(ctx, message)
	if err != nil {
		if errors.IsPromptCancelled(err) {
			return "", err
		}
		return "", errors.NewPromptCancelledError(err)
	}

	return value, nil
}
