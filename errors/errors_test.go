package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	errTest  = errors.Error("something went wrong")
	errOther = errors.Error("something else went wrong")
)

func TestError_Error_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "something went wrong", errTest.Error())
}

func TestError_Is_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "matches itself",
			err:      errTest,
			target:   errTest,
			expected: true,
		},
		{
			name:     "matches wrapped sentinel",
			err:      errTest.Wrap(stderrors.New("underlying cause")),
			target:   errTest,
			expected: true,
		},
		{
			name:     "matches fmt wrapped sentinel",
			err:      fmt.Errorf("context: %w", errTest),
			target:   errTest,
			expected: true,
		},
		{
			name:     "does not match a different sentinel",
			err:      errTest,
			target:   errOther,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, stderrors.Is(tt.err, tt.target))
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("underlying cause")
	wrapped := errTest.Wrap(cause)

	assert.Equal(t, "something went wrong -- underlying cause", wrapped.Error())
	require.ErrorIs(t, wrapped, errTest)
	assert.Equal(t, cause, stderrors.Unwrap(wrapped))
}

func TestError_Wrapf_Success(t *testing.T) {
	t.Parallel()

	wrapped := errTest.Wrapf("entity %q", "name")

	assert.Equal(t, `something went wrong -- entity "name"`, wrapped.Error())
	assert.ErrorIs(t, wrapped, errTest)
}
