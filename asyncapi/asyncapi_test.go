package asyncapi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `asyncapi: 3.0.0
info:
  title: User Events
  version: 1.0.0
  description: Emits user lifecycle events
servers:
  production:
    host: kafka.example.com:9092
    protocol: kafka
channels:
  user-events:
    address: user.signedup
    messages:
      userSignedUp:
        $ref: '#/components/messages/userSignedUp'
operations:
  sendUserSignedUp:
    action: send
    channel:
      $ref: '#/channels/user-events'
    messages:
      - $ref: '#/components/messages/userSignedUp'
components:
  messages:
    userSignedUp:
      payload:
        type: object
        properties:
          userId:
            type: string
      contentType: application/json
x-internal: true
`

func TestUnmarshal_Success(t *testing.T) {
	t.Parallel()

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(testDocument))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	assert.Equal(t, "3.0.0", doc.Asyncapi)
	assert.Equal(t, "User Events", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.NotNil(t, doc.Info.Description)
	assert.Equal(t, "Emits user lifecycle events", *doc.Info.Description)

	srv := doc.Servers.GetOrZero("production")
	require.NotNil(t, srv)
	require.False(t, srv.IsReference())
	assert.Equal(t, "kafka.example.com:9092", srv.GetObject().Host)
	assert.Equal(t, "kafka", srv.GetObject().Protocol)

	ch := doc.Channels.GetOrZero("user-events")
	require.NotNil(t, ch)
	require.False(t, ch.IsReference())
	assert.Equal(t, "user.signedup", *ch.GetObject().Address)

	msgSlot := ch.GetObject().Messages.GetOrZero("userSignedUp")
	require.NotNil(t, msgSlot)
	require.True(t, msgSlot.IsReference())
	assert.Equal(t, references.Reference("#/components/messages/userSignedUp"), msgSlot.GetReference())

	op := doc.Operations.GetOrZero("sendUserSignedUp")
	require.NotNil(t, op)
	assert.Equal(t, OperationActionSend, op.GetObject().Action)
	assert.Equal(t, references.Reference("#/channels/user-events"), op.GetObject().Channel.GetReference())

	msg := doc.Components.Messages.GetOrZero("userSignedUp")
	require.NotNil(t, msg)
	require.NotNil(t, msg.GetObject().ContentType)
	assert.Equal(t, "application/json", *msg.GetObject().ContentType)
	require.NotNil(t, msg.GetObject().Payload)

	require.NotNil(t, doc.Extensions)
	assert.True(t, doc.Extensions.Has("x-internal"))
}

func TestUnmarshal_Marshal_RoundTrip_Success(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	doc, validationErrs, err := Unmarshal(ctx, strings.NewReader(testDocument))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	var buf bytes.Buffer
	require.NoError(t, Marshal(ctx, doc, &buf))
	assert.Equal(t, testDocument, buf.String())
}

func TestUnmarshal_JSONInput_Success(t *testing.T) {
	t.Parallel()

	input := `{"asyncapi": "3.0.0", "info": {"title": "User Events", "version": "1.0.0"}}`

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, validationErrs)
	assert.Equal(t, "User Events", doc.Info.Title)
}

func TestUnmarshal_ValidationErrors_Success(t *testing.T) {
	t.Parallel()

	input := "asyncapi: 3.0.0\ninfo:\n  title: User Events\n"

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.Len(t, validationErrs, 1)
	assert.Contains(t, validationErrs[0].Error(), "info.version is required")
}

func TestUnmarshal_UnsupportedVersion_Error(t *testing.T) {
	t.Parallel()

	input := "asyncapi: 2.6.0\ninfo:\n  title: User Events\n  version: 1.0.0\n"

	_, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, validationErrs, 1)
	assert.Contains(t, validationErrs[0].Error(), "only AsyncAPI version 3.0.0 is supported")
}

func TestUnmarshal_UnknownField_Error(t *testing.T) {
	t.Parallel()

	input := "asyncapi: 3.0.0\nbogus: true\ninfo:\n  title: User Events\n  version: 1.0.0\n"

	_, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, validationErrs, 1)
	assert.Contains(t, validationErrs[0].Error(), `field "bogus" is not a recognized field or a valid specification extension`)
}

func TestUnmarshal_NotYAML_Error(t *testing.T) {
	t.Parallel()

	_, _, err := Unmarshal(t.Context(), strings.NewReader("{invalid: yaml: document"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document")
}

func TestMarshal_JSONOutput_Success(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	doc, validationErrs, err := Unmarshal(ctx, strings.NewReader(testDocument))
	require.NoError(t, err)
	require.Empty(t, validationErrs)

	cfg := yml.GetConfigFromContext(ctx)
	cfg.OutputFormat = yml.OutputFormatJSON

	var buf bytes.Buffer
	require.NoError(t, Marshal(yml.ContextWithConfig(ctx, cfg), doc, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"asyncapi\": \"3.0.0\","))
	assert.Contains(t, out, `"$ref": "#/components/messages/userSignedUp"`)
	assert.Contains(t, out, `"x-internal": true`)
}

func TestMarshal_NilDocument_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Marshal(t.Context(), nil, &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilValue)
}

func TestAsyncAPI_Validate_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		document string
		expected string
	}{
		{
			name:     "operation action missing",
			document: "asyncapi: 3.0.0\ninfo:\n  title: t\n  version: 1.0.0\noperations:\n  op:\n    channel:\n      $ref: '#/channels/c'\n",
			expected: "operation.action is required",
		},
		{
			name:     "operation action invalid",
			document: "asyncapi: 3.0.0\ninfo:\n  title: t\n  version: 1.0.0\noperations:\n  op:\n    action: publish\n    channel:\n      $ref: '#/channels/c'\n",
			expected: `operation.action must be one of [send, receive] but was "publish"`,
		},
		{
			name:     "operation channel missing",
			document: "asyncapi: 3.0.0\ninfo:\n  title: t\n  version: 1.0.0\noperations:\n  op:\n    action: send\n",
			expected: "operation.channel is required",
		},
		{
			name:     "server host missing",
			document: "asyncapi: 3.0.0\ninfo:\n  title: t\n  version: 1.0.0\nservers:\n  prod:\n    protocol: kafka\n",
			expected: "server.host is required",
		},
		{
			name:     "root key pattern violation",
			document: "asyncapi: 3.0.0\ninfo:\n  title: t\n  version: 1.0.0\nchannels:\n  bad key: {}\n",
			expected: `channel name "bad key" must contain only letters, digits, hyphens and underscores`,
		},
		{
			name:     "invalid id",
			document: "asyncapi: 3.0.0\nid: not a uri\ninfo:\n  title: t\n  version: 1.0.0\n",
			expected: "id must be a valid URI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(tt.document))
			require.NoError(t, err)
			require.NotEmpty(t, validationErrs)

			found := false
			for _, vErr := range validationErrs {
				if strings.Contains(vErr.Error(), tt.expected) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected a validation error containing %q, got %v", tt.expected, validationErrs)
		})
	}
}
