package extensions_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func stringNode(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
	}
}

func TestMatchesKeyPattern_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{
			name:     "simple key",
			key:      "x-internal",
			expected: true,
		},
		{
			name:     "dotted vendor key",
			key:      "x-com.example.tracking",
			expected: true,
		},
		{
			name:     "hyphenated key",
			key:      "x-code-samples",
			expected: true,
		},
		{
			name:     "missing prefix",
			key:      "internal",
			expected: false,
		},
		{
			name:     "bare prefix",
			key:      "x-",
			expected: false,
		},
		{
			name:     "illegal characters",
			key:      "x-foo bar",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, extensions.MatchesKeyPattern(tt.key))
		})
	}
}

func TestExtensions_Validate_Success(t *testing.T) {
	t.Parallel()

	ext := extensions.New(
		extensions.NewElem("x-internal", stringNode("true")),
		extensions.NewElem("x-com.example.tracking", stringNode("abc")),
	)

	assert.Empty(t, ext.Validate())
}

func TestExtensions_Validate_Error(t *testing.T) {
	t.Parallel()

	ext := extensions.New(
		extensions.NewElem("x-internal", stringNode("true")),
		extensions.NewElem("not-an-extension", stringNode("oops")),
	)

	errs := ext.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `field "not-an-extension" does not match specification extension pattern`)
}

func TestExtensions_Validate_NilReceiver_Success(t *testing.T) {
	t.Parallel()

	var ext *extensions.Extensions
	assert.Empty(t, ext.Validate())
}

func TestExtensions_IsEqual_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a        *extensions.Extensions
		b        *extensions.Extensions
		expected bool
	}{
		{
			name:     "both empty",
			a:        extensions.New(),
			b:        extensions.New(),
			expected: true,
		},
		{
			name:     "same keys and values",
			a:        extensions.New(extensions.NewElem("x-internal", stringNode("true"))),
			b:        extensions.New(extensions.NewElem("x-internal", stringNode("true"))),
			expected: true,
		},
		{
			name:     "different values",
			a:        extensions.New(extensions.NewElem("x-internal", stringNode("true"))),
			b:        extensions.New(extensions.NewElem("x-internal", stringNode("false"))),
			expected: false,
		},
		{
			name:     "different lengths",
			a:        extensions.New(extensions.NewElem("x-internal", stringNode("true"))),
			b:        extensions.New(),
			expected: false,
		},
		{
			name:     "nil against empty",
			a:        nil,
			b:        extensions.New(),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.IsEqual(tt.b))
		})
	}
}
