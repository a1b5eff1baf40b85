package asyncapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncAPI_Validate_DanglingReferences_Error(t *testing.T) {
	t.Parallel()

	input := `asyncapi: 3.0.0
info:
  title: User Events
  version: 1.0.0
  tags:
    - $ref: '#/components/tags/ghost'
channels:
  orders:
    $ref: '#/channels/missing'
  events:
    address: user/events
operations:
  publishEvent:
    action: send
    channel:
      $ref: '#/channels/nowhere'
    messages:
      - $ref: '#/components/messages/ghost'
`

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Len(t, validationErrs, 4)

	joined := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		joined = append(joined, e.Error())
	}
	all := strings.Join(joined, "\n")

	assert.Contains(t, all, `info.tags.0 references "#/components/tags/ghost" which does not resolve to an existing entry`)
	assert.Contains(t, all, `channels.orders references "#/channels/missing" which does not resolve to an existing entry`)
	assert.Contains(t, all, `operations.publishEvent.channel references "#/channels/nowhere" which does not resolve to an existing entry`)
	assert.Contains(t, all, `operations.publishEvent.messages.0 references "#/components/messages/ghost" which does not resolve to an existing entry`)
}

func TestAsyncAPI_Validate_ResolvableReferences_Success(t *testing.T) {
	t.Parallel()

	input := `asyncapi: 3.0.0
info:
  title: User Events
  version: 1.0.0
servers:
  production:
    $ref: '#/components/servers/production'
channels:
  events:
    address: user/events
    messages:
      signedUp:
        $ref: '#/components/messages/signedUp'
operations:
  publishEvent:
    action: send
    channel:
      $ref: '#/channels/events'
    messages:
      - $ref: '#/components/messages/signedUp'
    traits:
      - $ref: '#/components/operationTraits/common'
components:
  servers:
    production:
      host: mqtt.example.com
      protocol: mqtt
  messages:
    signedUp:
      name: userSignedUp
  operationTraits:
    common:
      summary: Shared behavior
`

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Empty(t, validationErrs)
}

func TestAsyncAPI_Validate_ReferenceInsideComponents_Error(t *testing.T) {
	t.Parallel()

	input := `asyncapi: 3.0.0
info:
  title: User Events
  version: 1.0.0
components:
  messages:
    signedUp:
      name: userSignedUp
      correlationId:
        $ref: '#/components/correlationIds/absent'
  replies:
    ack:
      address:
        $ref: '#/components/replyAddresses/absent'
`

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Len(t, validationErrs, 2)

	joined := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		joined = append(joined, e.Error())
	}
	all := strings.Join(joined, "\n")

	assert.Contains(t, all, `components.messages.signedUp.correlationId references "#/components/correlationIds/absent" which does not resolve to an existing entry`)
	assert.Contains(t, all, `components.replies.ack.address references "#/components/replyAddresses/absent" which does not resolve to an existing entry`)
}

func TestAsyncAPI_Validate_InvalidReferenceGrammarNotDoubleReported_Error(t *testing.T) {
	t.Parallel()

	input := `asyncapi: 3.0.0
info:
  title: User Events
  version: 1.0.0
channels:
  events:
    $ref: 'https://example.com/shared.yaml#/channels/events'
`

	doc, validationErrs, err := Unmarshal(t.Context(), strings.NewReader(input))
	require.NoError(t, err)
	require.NotNil(t, doc)

	// The holding slot reports the grammar error. The resolution pass must
	// not add a second error for the same reference.
	require.Len(t, validationErrs, 1)
	assert.Contains(t, validationErrs[0].Error(), "must point into the current document")
}
