package prompt

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredPrefersArgument(t *testing.T) {
	called := false
	p := PrompterFunc(func(ctx context.Context, message string) (string, error) {
		called = true
		return "prompted", nil
	})

	got, err := Required(context.Background(), p, "user", "name?")
	require.NoError(t, err)
	assert.Equal(t, "user", got)
	assert.False(t, called)
}

func TestRequiredPromptsWhenArgumentMissing(t *testing.T) {
	var asked string
	p := PrompterFunc(func(ctx context.Context, message string) (string, error) {
		asked = message
		return "order", nil
	})

	got, err := Required(context.Background(), p, "", "What should the repository be named? (user)")
	require.NoError(t, err)
	assert.Equal(t, "order", got)
	assert.Equal(t, "What should the repository be named? (user)", asked)
}

func TestRequiredEmptyAnswerIsReturned(t *testing.T) {
	got, err := Required(context.Background(), Static(""), "", "name?")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Required(context.Background(), NonInteractive{}, "", "name?")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Required(context.Background(), nil, "", "name?")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequiredCancellation(t *testing.T) {
	p := PrompterFunc(func(ctx context.Context, message string) (string, error) {
		return "", promptui.ErrInterrupt
	})

	_, err := Required(context.Background(), p, "", "name?")
	require.Error(t, err)
	assert.True(t, errors.IsPromptCancelled(err))
	assert.True(t, stderrors.Is(err, promptui.ErrInterrupt))
}

func TestTerminalCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTerminal(nil, nil).Prompt(ctx, "name?")
	require.Error(t, err)
	assert.True(t, errors.IsPromptCancelled(err))
}
