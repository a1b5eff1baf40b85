package yml_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromContext_Default_Success(t *testing.T) {
	t.Parallel()

	cfg := yml.GetConfigFromContext(t.Context())
	require.NotNil(t, cfg)
	assert.Equal(t, 2, cfg.Indentation)
	assert.Equal(t, yml.OutputFormatYAML, cfg.OutputFormat)

	// Each call returns a fresh copy.
	cfg.Indentation = 8
	again := yml.GetConfigFromContext(t.Context())
	assert.Equal(t, 2, again.Indentation)
}

func TestGetConfigFromContext_ReturnsCopy_Success(t *testing.T) {
	t.Parallel()

	attached := &yml.Config{
		Indentation:  4,
		OutputFormat: yml.OutputFormatYAML,
	}
	ctx := yml.ContextWithConfig(t.Context(), attached)

	cfg := yml.GetConfigFromContext(ctx)
	require.NotNil(t, cfg)
	assert.NotSame(t, attached, cfg)

	cfg.Indentation = 8
	cfg.OutputFormat = yml.OutputFormatJSON
	cfg.EnsureASCII = true

	assert.Equal(t, 4, attached.Indentation)
	assert.Equal(t, yml.OutputFormatYAML, attached.OutputFormat)
	assert.False(t, attached.EnsureASCII)
}

func TestGetConfigFromContext_NormalizesIndentationOnCopy_Success(t *testing.T) {
	t.Parallel()

	attached := &yml.Config{
		Indentation:  0,
		OutputFormat: yml.OutputFormatJSON,
	}
	ctx := yml.ContextWithConfig(t.Context(), attached)

	cfg := yml.GetConfigFromContext(ctx)
	assert.Equal(t, 2, cfg.Indentation)
	assert.Equal(t, yml.OutputFormatJSON, cfg.OutputFormat)

	// Normalization must not write back into the attached config.
	assert.Equal(t, 0, attached.Indentation)
}
