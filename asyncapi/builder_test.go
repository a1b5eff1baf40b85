package asyncapi

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/optional"
	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder_Defaults_Success(t *testing.T) {
	t.Parallel()

	doc, conflicts, err := NewBuilder().Spec(t.Context())
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	assert.Equal(t, "3.0.0", doc.Asyncapi)
	assert.Equal(t, "Sample APP", doc.Info.Title)
	assert.Equal(t, "0.0.1", doc.Info.Version)
	assert.Equal(t, 0, doc.Servers.Len())
	assert.Equal(t, 0, doc.Channels.Len())
	assert.Equal(t, 0, doc.Operations.Len())
}

func TestBuilder_UpsertChannelAndOperation_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("test-channel", ChannelFields{
			Address: optional.Of("test.topic"),
		}).
		UpsertOperation("test-operation", OperationFields{
			Action:      optional.Of(OperationActionSend),
			ChannelName: optional.Of("test-channel"),
		})
	require.NoError(t, b.Err())

	doc, _, err := b.Spec(t.Context())
	require.NoError(t, err)

	ch := doc.Components.Channels.GetOrZero("test-channel")
	require.NotNil(t, ch)
	require.False(t, ch.IsReference())
	require.NotNil(t, ch.GetObject().Address)
	assert.Equal(t, "test.topic", *ch.GetObject().Address)

	rootCh := doc.Channels.GetOrZero("test-channel")
	require.NotNil(t, rootCh)
	assert.Equal(t, references.Reference("#/channels/test-channel"), rootCh.GetReference())

	op := doc.Components.Operations.GetOrZero("test-operation")
	require.NotNil(t, op)
	require.False(t, op.IsReference())
	assert.Equal(t, OperationActionSend, op.GetObject().Action)
	assert.Equal(t, references.Reference("#/channels/test-channel"), op.GetObject().Channel.GetReference())

	rootOp := doc.Operations.GetOrZero("test-operation")
	require.NotNil(t, rootOp)
	assert.Equal(t, references.Reference("#/operations/test-operation"), rootOp.GetReference())
}

func TestBuilder_UpsertOperation_InvalidAction_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{}).
		UpsertOperation("op", OperationFields{
			Action:      optional.Of(OperationAction("subscribe")),
			ChannelName: optional.Of("c"),
		})

	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.Contains(t, err.Error(), `operation "op" action must be one of [send, receive] but was "subscribe"`)

	assert.False(t, b.doc.Components.Operations.Has("op"))
	assert.False(t, b.doc.Operations.Has("op"))
}

func TestBuilder_UpsertOperation_ChannelMissing_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertOperation("op", OperationFields{
			Action:      optional.Of(OperationActionReceive),
			ChannelName: optional.Of("ghost"),
		})

	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `channel "ghost" does not exist in components.channels`)
	assert.False(t, b.doc.Components.Operations.Has("op"))
}

func TestBuilder_UpsertOperation_WithoutRootRef_ChannelPointer_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{}, WithoutRootRef()).
		UpsertOperation("op", OperationFields{
			Action:      optional.Of(OperationActionSend),
			ChannelName: optional.Of("c"),
		}, WithoutRootRef())
	require.NoError(t, b.Err())

	op := b.doc.Components.Operations.GetOrZero("op").GetObject()
	assert.Equal(t, references.Reference("#/components/channels/c"), op.Channel.GetReference())
	assert.False(t, b.doc.Operations.Has("op"))
	assert.False(t, b.doc.Channels.Has("c"))
}

func TestBuilder_UpsertOperation_MergeUpdate_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{}).
		UpsertOperation("op", OperationFields{
			Action:      optional.Of(OperationActionSend),
			ChannelName: optional.Of("c"),
			Summary:     optional.Of("first"),
		}).
		UpsertOperation("op", OperationFields{
			Summary: optional.Of("second"),
		})
	require.NoError(t, b.Err())

	op := b.doc.Components.Operations.GetOrZero("op").GetObject()
	assert.Equal(t, OperationActionSend, op.Action)
	assert.Equal(t, references.Reference("#/channels/c"), op.Channel.GetReference())
	require.NotNil(t, op.Summary)
	assert.Equal(t, "second", *op.Summary)
}

func TestBuilder_UpsertServer_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().UpsertServer("production", ServerFields{
		Host:     optional.Of("kafka.example.com:9092"),
		Protocol: optional.Of("kafka"),
	})
	require.NoError(t, b.Err())

	srv := b.doc.Components.Servers.GetOrZero("production")
	require.NotNil(t, srv)
	assert.Equal(t, "kafka.example.com:9092", srv.GetObject().Host)

	rootSrv := b.doc.Servers.GetOrZero("production")
	require.NotNil(t, rootSrv)
	assert.Equal(t, references.Reference("#/components/servers/production"), rootSrv.GetReference())
}

func TestBuilder_UpsertServer_MissingFields_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder().UpsertServer("production", ServerFields{
		Host: optional.Of("kafka.example.com:9092"),
	})

	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), `server "production" requires fields [protocol]`)
	assert.False(t, b.doc.Components.Servers.Has("production"))
	assert.False(t, b.doc.Servers.Has("production"))
}

func TestBuilder_UpsertServer_WithoutRootRefRemovesLink_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertServer("production", ServerFields{
			Host:     optional.Of("kafka.example.com:9092"),
			Protocol: optional.Of("kafka"),
		}).
		UpsertServer("production", ServerFields{}, WithoutRootRef())
	require.NoError(t, b.Err())

	assert.True(t, b.doc.Components.Servers.Has("production"))
	assert.False(t, b.doc.Servers.Has("production"))
}

func TestBuilder_Upsert_StoredAsReference_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.doc.Components.Channels.Set("c", NewReference[Channel](references.ToComponentChannel("other")))

	b.UpsertChannel("c", ChannelFields{Address: optional.Of("a.b")})

	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoredAsReference)
	assert.Contains(t, err.Error(), `channel "c" is stored as a reference and cannot be updated in place`)
}

func TestBuilder_InvalidName_LatchesError(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("bad name", ChannelFields{}).
		UpsertChannel("good-name", ChannelFields{})

	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Contains(t, err.Error(), `channel name "bad name" must contain only letters, digits, hyphens and underscores`)

	assert.False(t, b.doc.Components.Channels.Has("good-name"))

	_, _, specErr := b.Spec(t.Context())
	assert.Equal(t, err, specErr)
}

func TestBuilder_RootRefRoundTrip_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().UpsertChannel("events", ChannelFields{})
	require.NoError(t, b.Err())

	original := b.doc.Channels.GetOrZero("events").GetReference()

	b.RemoveRootChannel("events", false)
	require.NoError(t, b.Err())
	assert.False(t, b.doc.Channels.Has("events"))
	assert.True(t, b.doc.Components.Channels.Has("events"))

	b.AddRootChannelRef("events")
	require.NoError(t, b.Err())
	assert.Equal(t, original, b.doc.Channels.GetOrZero("events").GetReference())
}

func TestBuilder_AddRootRef_Missing_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		apply func(b *Builder) *Builder
	}{
		{
			name:  "server",
			apply: func(b *Builder) *Builder { return b.AddRootServerRef("ghost") },
		},
		{
			name:  "channel",
			apply: func(b *Builder) *Builder { return b.AddRootChannelRef("ghost") },
		},
		{
			name:  "operation",
			apply: func(b *Builder) *Builder { return b.AddRootOperationRef("ghost") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := tt.apply(NewBuilder())
			err := b.Err()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), `"ghost" does not exist, add it to components first`)
		})
	}
}

func TestBuilder_RemoveRoot_Cascade_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertServer("production", ServerFields{
			Host:     optional.Of("kafka.example.com:9092"),
			Protocol: optional.Of("kafka"),
		}).
		RemoveRootServer("production", true)
	require.NoError(t, b.Err())

	assert.False(t, b.doc.Servers.Has("production"))
	assert.False(t, b.doc.Components.Servers.Has("production"))
}

func TestBuilder_AddMessageToOperation_Idempotent_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{}).
		UpsertOperation("op", OperationFields{
			Action:      optional.Of(OperationActionSend),
			ChannelName: optional.Of("c"),
		}).
		UpsertMessage("m", MessageFields{}).
		AddMessageToOperation("op", "m").
		AddMessageToOperation("op", "m")
	require.NoError(t, b.Err())

	op := b.doc.Components.Operations.GetOrZero("op").GetObject()
	require.Len(t, op.Messages, 1)
	assert.Equal(t, references.Reference("#/components/messages/m"), op.Messages[0].GetReference())
}

func TestBuilder_RemoveMessageFromOperation_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{}).
		UpsertOperation("op", OperationFields{
			Action:      optional.Of(OperationActionSend),
			ChannelName: optional.Of("c"),
		}).
		UpsertMessage("m", MessageFields{}).
		AddMessageToOperation("op", "m").
		RemoveMessageFromOperation("op", "m")
	require.NoError(t, b.Err())

	op := b.doc.Components.Operations.GetOrZero("op").GetObject()
	assert.Empty(t, op.Messages)

	b.RemoveMessageFromOperation("op", "m")
	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPresent)
	assert.Contains(t, err.Error(), `message "m" is not linked to operation "op"`)
}

func TestBuilder_AddMessageToChannel_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{}).
		UpsertMessage("m", MessageFields{}).
		AddMessageToChannel("c", "m").
		AddMessageToChannel("c", "m")
	require.NoError(t, b.Err())

	ch := b.doc.Components.Channels.GetOrZero("c").GetObject()
	require.NotNil(t, ch.Messages)
	assert.Equal(t, 1, ch.Messages.Len())
	assert.Equal(t, references.Reference("#/components/messages/m"), ch.Messages.GetOrZero("m").GetReference())
}

func TestBuilder_RemoveMessageFromChannel_NotLinked_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpsertChannel("c", ChannelFields{Messages: sequencedmap.New[string, *ReferencedMessage]()}).
		UpsertMessage("m", MessageFields{}).
		RemoveMessageFromChannel("c", "m")

	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPresent)
	assert.Contains(t, err.Error(), `message "m" is not linked to channel "c"`)
}

func TestBuilder_UpdateInfo_Merge_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		UpdateInfo(InfoFields{
			Title:       optional.Of("Events API"),
			Description: optional.Of("Event backbone"),
		}).
		UpdateInfo(InfoFields{
			Description: optional.Null[string](),
		})
	require.NoError(t, b.Err())

	assert.Equal(t, "Events API", b.doc.Info.Title)
	assert.Equal(t, "0.0.1", b.doc.Info.Version)
	assert.Nil(t, b.doc.Info.Description)
}

func TestBuilder_ReplaceInfo_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().ReplaceInfo(Info{
		Title:   "Events API",
		Version: "2.0.0",
	})
	require.NoError(t, b.Err())

	assert.Equal(t, "Events API", b.doc.Info.Title)
	assert.Equal(t, "2.0.0", b.doc.Info.Version)
}

func TestBuilder_UpdateID_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().UpdateID(pointer.From("urn:com:example:events"))
	require.NoError(t, b.Err())
	require.NotNil(t, b.doc.ID)
	assert.Equal(t, "urn:com:example:events", *b.doc.ID)

	b.UpdateID(nil)
	require.NoError(t, b.Err())
	assert.Nil(t, b.doc.ID)
}

func TestBuilder_UpdateID_Invalid_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder().UpdateID(pointer.From("not a uri"))
	require.Error(t, b.Err())
	assert.Contains(t, b.Err().Error(), "id must be a valid URI")
}

func TestBuilder_SetComponent_Success(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		SetCorrelationID("default", &CorrelationID{Location: "$message.header#/correlationId"}).
		SetReplyAddress("replyTo", &OperationReplyAddress{Location: "$message.header#/replyTo"})
	require.NoError(t, b.Err())

	assert.True(t, b.doc.Components.CorrelationIDs.Has("default"))
	assert.True(t, b.doc.Components.ReplyAddresses.Has("replyTo"))
}

func TestBuilder_SetComponent_NilValue_Error(t *testing.T) {
	t.Parallel()

	b := NewBuilder().SetSchema("payload", nil)
	err := b.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilValue)
}

func TestBuilder_YAML_Success(t *testing.T) {
	t.Parallel()

	out, err := NewBuilder().
		UpsertChannel("events", ChannelFields{Address: optional.Of("app.events")}).
		YAML(t.Context())
	require.NoError(t, err)

	assert.Contains(t, string(out), "asyncapi: 3.0.0")
	assert.Contains(t, string(out), "$ref: '#/channels/events'")
	assert.Contains(t, string(out), "address: app.events")
}

func TestBuilder_JSON_Success(t *testing.T) {
	t.Parallel()

	out, err := NewBuilder().JSON(t.Context(), 2, false)
	require.NoError(t, err)

	assert.Contains(t, string(out), "\"asyncapi\": \"3.0.0\"")
	assert.Contains(t, string(out), "\"title\": \"Sample APP\"")
}

func TestBuilder_JSON_LeavesCallerConfigUntouched_Success(t *testing.T) {
	t.Parallel()

	cfg := &yml.Config{
		Indentation:  4,
		OutputFormat: yml.OutputFormatYAML,
	}
	ctx := yml.ContextWithConfig(t.Context(), cfg)

	_, err := NewBuilder().JSON(ctx, 2, true)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Indentation)
	assert.Equal(t, yml.OutputFormatYAML, cfg.OutputFormat)
	assert.False(t, cfg.EnsureASCII)
}
