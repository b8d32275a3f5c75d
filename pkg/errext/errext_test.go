package errext

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithExitCodeIfNone(t *testing.T) {
	assert.Nil(t, WithExitCodeIfNone(nil, InvalidConfig))

	base := errors.New("catalog is broken")
	err := WithExitCodeIfNone(base, InvalidConfig)
	assert.Equal(t, InvalidConfig, Code(err))
	assert.ErrorIs(t, err, base)

	wrapped := fmt.Errorf("run: %w", err)
	again := WithExitCodeIfNone(wrapped, EnvironmentError)
	assert.Equal(t, InvalidConfig, Code(again), "an existing exit code is kept")
}

func TestCode(t *testing.T) {
	assert.Equal(t, ExitCode(0), Code(nil))
	assert.Equal(t, ChecksFailed, Code(errors.New("plain")))
	assert.Equal(t, EnvironmentError, Code(WithExitCodeIfNone(errors.New("x"), EnvironmentError)))
}

func TestWithHint(t *testing.T) {
	assert.Nil(t, WithHint(nil, "ignored"))

	err := WithHint(errors.New("chrome missing"), "set UICHECK_BROWSER_BIN")
	err = WithHint(fmt.Errorf("launch: %w", err), "or install chromium")

	var h HasHint
	require.ErrorAs(t, err, &h)
	assert.Equal(t, "or install chromium (set UICHECK_BROWSER_BIN)", h.Hint())
}
