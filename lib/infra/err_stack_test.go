package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorStack_New(t *testing.T) {
	err := NewErrorStack("[deque] index out of range")
	require.Error(t, err)
	require.Equal(t, "[deque] index out of range", err.Error())

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "[deque] index out of range"))
	require.Contains(t, verbose, "err_stack_test.go")
}

func TestErrorStack_Wrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapErrorStack(cause, "[ordered-map] load failed")
	require.Error(t, err)
	require.Equal(t, "[ordered-map] load failed: root cause", err.Error())
	require.ErrorIs(t, err, cause)

	require.Nil(t, WrapErrorStack(nil))

	bare := WrapErrorStack(cause)
	require.Equal(t, "root cause", bare.Error())
}
