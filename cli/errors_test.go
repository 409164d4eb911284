package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCommandError(t *testing.T) {
	err := NewCommandError(3)
	assert.Equal(t, 3, err.ExitCode())
	assert.Equal(t, "command failed", err.Error())

	// Wrapped errors stay matchable.
	wrapped := fmt.Errorf("running: %w", err)
	var cmdErr *CommandError
	assert.True(t, errors.As(wrapped, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode())
}

func TestFindAccount(t *testing.T) {
	_, err := findAccount(nil, "Missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no accounts exist yet")
}
