package asyncapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/speakeasy-api/asyncapi/optional"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
)

const (
	defaultInfoTitle   = "Sample APP"
	defaultInfoVersion = "0.0.1"
)

// Builder assembles an AsyncAPI document through chained mutation methods
// while keeping root collections and the components registry consistent.
// The first failing method latches its error and turns every following call
// into a no-op; the error surfaces from Err, Spec, JSON and YAML. A failed
// call never leaves the draft partially mutated.
type Builder struct {
	doc *AsyncAPI
	err error
}

// NewBuilder returns a builder holding a minimal valid draft document.
func NewBuilder() *Builder {
	return &Builder{
		doc: &AsyncAPI{
			Asyncapi: Version,
			Info: Info{
				Title:   defaultInfoTitle,
				Version: defaultInfoVersion,
			},
			Servers:    sequencedmap.New[string, *ReferencedServer](),
			Channels:   sequencedmap.New[string, *ReferencedChannel](),
			Operations: sequencedmap.New[string, *ReferencedOperation](),
			Components: &Components{
				Schemas:           sequencedmap.New[string, *ReferencedSchema](),
				Servers:           sequencedmap.New[string, *ReferencedServer](),
				Channels:          sequencedmap.New[string, *ReferencedChannel](),
				Operations:        sequencedmap.New[string, *ReferencedOperation](),
				Messages:          sequencedmap.New[string, *ReferencedMessage](),
				SecuritySchemes:   sequencedmap.New[string, *ReferencedSecurityScheme](),
				ServerVariables:   sequencedmap.New[string, *ReferencedServerVariable](),
				Parameters:        sequencedmap.New[string, *ReferencedParameter](),
				CorrelationIDs:    sequencedmap.New[string, *ReferencedCorrelationID](),
				Replies:           sequencedmap.New[string, *ReferencedOperationReply](),
				ReplyAddresses:    sequencedmap.New[string, *ReferencedOperationReplyAddress](),
				ExternalDocs:      sequencedmap.New[string, *ReferencedExternalDocumentation](),
				Tags:              sequencedmap.New[string, *ReferencedTag](),
				OperationTraits:   sequencedmap.New[string, *ReferencedOperationTrait](),
				MessageTraits:     sequencedmap.New[string, *ReferencedMessageTrait](),
				ServerBindings:    sequencedmap.New[string, *ReferencedServerBindings](),
				ChannelBindings:   sequencedmap.New[string, *ReferencedChannelBindings](),
				OperationBindings: sequencedmap.New[string, *ReferencedOperationBindings](),
				MessageBindings:   sequencedmap.New[string, *ReferencedMessageBindings](),
			},
		},
	}
}

// Err returns the first error recorded by a builder method, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// UpdateID sets the document id, which must be a valid URI. Passing nil
// clears the id.
func (b *Builder) UpdateID(id *string) *Builder {
	if b.err != nil {
		return b
	}

	if id == nil {
		b.doc.ID = nil
		return b
	}

	if err := validateURL(*id); err != nil {
		return b.fail(fmt.Errorf("id must be a valid URI: %w", err))
	}

	b.doc.ID = id
	return b
}

// UpdateDefaultContentType sets the document defaultContentType. Passing nil
// clears it.
func (b *Builder) UpdateDefaultContentType(contentType *string) *Builder {
	if b.err != nil {
		return b
	}

	b.doc.DefaultContentType = contentType
	return b
}

// InfoFields carries a merge update for the document info. Unset fields are
// left untouched and null fields are cleared.
type InfoFields struct {
	Title          optional.Val[string]
	Version        optional.Val[string]
	Description    optional.Val[string]
	TermsOfService optional.Val[string]
	Contact        optional.Val[Contact]
	License        optional.Val[License]
	ExternalDocs   optional.Val[ReferencedExternalDocumentation]
	Tags           optional.Val[[]*ReferencedTag]
}

// UpdateInfo merges the provided fields into the document info.
func (b *Builder) UpdateInfo(fields InfoFields) *Builder {
	if b.err != nil {
		return b
	}

	info := &b.doc.Info
	optional.ApplyValue(fields.Title, &info.Title)
	optional.ApplyValue(fields.Version, &info.Version)
	optional.Apply(fields.Description, &info.Description)
	optional.Apply(fields.TermsOfService, &info.TermsOfService)
	optional.Apply(fields.Contact, &info.Contact)
	optional.Apply(fields.License, &info.License)
	optional.Apply(fields.ExternalDocs, &info.ExternalDocs)

	if tags, ok := fields.Tags.Get(); ok {
		info.Tags = tags
	} else if fields.Tags.IsNull() {
		info.Tags = nil
	}

	return b
}

// ReplaceInfo swaps the document info wholesale.
func (b *Builder) ReplaceInfo(info Info) *Builder {
	if b.err != nil {
		return b
	}

	b.doc.Info = info
	return b
}

// UpsertOption configures registry upsert behavior.
type UpsertOption func(*upsertOptions)

type upsertOptions struct {
	componentOnly bool
}

// WithoutRootRef stores the entity in the components registry without linking
// it from the root collection, removing an existing root reference if one is
// present.
func WithoutRootRef() UpsertOption {
	return func(o *upsertOptions) {
		o.componentOnly = true
	}
}

func newUpsertOptions(opts []UpsertOption) upsertOptions {
	o := upsertOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ServerFields carries the creatable and updatable fields of a server. Host
// and Protocol are required when the upsert creates the entry.
type ServerFields struct {
	Host            optional.Val[string]
	Protocol        optional.Val[string]
	ProtocolVersion optional.Val[string]
	Pathname        optional.Val[string]
	Description     optional.Val[string]
	Title           optional.Val[string]
	Summary         optional.Val[string]
	Variables       *sequencedmap.Map[string, *ReferencedServerVariable]
	Security        []*ReferencedSecurityScheme
	Tags            []*ReferencedTag
	ExternalDocs    optional.Val[ReferencedExternalDocumentation]
	Bindings        optional.Val[ReferencedServerBindings]
}

// UpsertServer creates or merge-updates a server in components.servers. By
// default the root servers collection is pointed at the registry entry via
// #/components/servers/<name>; WithoutRootRef keeps the entry registry-only.
func (b *Builder) UpsertServer(name string, fields ServerFields, opts ...UpsertOption) *Builder {
	if b.err != nil {
		return b
	}

	srv, err := upsertTarget(b.doc.Components.ensureServers(), name, "server")
	if err != nil {
		return b.fail(err)
	}

	if srv == nil {
		var missing []string
		if !fields.Host.IsSet() {
			missing = append(missing, "host")
		}
		if !fields.Protocol.IsSet() {
			missing = append(missing, "protocol")
		}
		if len(missing) > 0 {
			return b.fail(fmt.Errorf("server %q requires fields %v: %w", name, missing, ErrMissingField))
		}
		srv = &Server{}
		b.doc.Components.Servers.Set(name, NewReferenced[Server](srv))
	}

	optional.ApplyValue(fields.Host, &srv.Host)
	optional.ApplyValue(fields.Protocol, &srv.Protocol)
	optional.Apply(fields.ProtocolVersion, &srv.ProtocolVersion)
	optional.Apply(fields.Pathname, &srv.Pathname)
	optional.Apply(fields.Description, &srv.Description)
	optional.Apply(fields.Title, &srv.Title)
	optional.Apply(fields.Summary, &srv.Summary)
	if fields.Variables != nil {
		srv.Variables = fields.Variables
	}
	if fields.Security != nil {
		srv.Security = fields.Security
	}
	if fields.Tags != nil {
		srv.Tags = fields.Tags
	}
	optional.Apply(fields.ExternalDocs, &srv.ExternalDocs)
	optional.Apply(fields.Bindings, &srv.Bindings)

	syncRootRef(b.doc.Servers, name, references.ToComponentServer(name), newUpsertOptions(opts))
	return b
}

// ChannelFields carries the creatable and updatable fields of a channel. A
// channel has no required fields beyond its name.
type ChannelFields struct {
	Address      optional.Val[string]
	Title        optional.Val[string]
	Summary      optional.Val[string]
	Description  optional.Val[string]
	Messages     *sequencedmap.Map[string, *ReferencedMessage]
	Servers      []*ReferencedServer
	Parameters   *sequencedmap.Map[string, *ReferencedParameter]
	Tags         []*ReferencedTag
	ExternalDocs optional.Val[ReferencedExternalDocumentation]
	Bindings     optional.Val[ReferencedChannelBindings]
}

// UpsertChannel creates or merge-updates a channel in components.channels. By
// default the root channels collection is pointed at the registry entry via
// #/channels semantics; WithoutRootRef keeps the entry registry-only.
func (b *Builder) UpsertChannel(name string, fields ChannelFields, opts ...UpsertOption) *Builder {
	if b.err != nil {
		return b
	}

	ch, err := upsertTarget(b.doc.Components.ensureChannels(), name, "channel")
	if err != nil {
		return b.fail(err)
	}

	if ch == nil {
		ch = &Channel{}
		b.doc.Components.Channels.Set(name, NewReferenced[Channel](ch))
	}

	optional.Apply(fields.Address, &ch.Address)
	optional.Apply(fields.Title, &ch.Title)
	optional.Apply(fields.Summary, &ch.Summary)
	optional.Apply(fields.Description, &ch.Description)
	if fields.Messages != nil {
		ch.Messages = fields.Messages
	}
	if fields.Servers != nil {
		ch.Servers = fields.Servers
	}
	if fields.Parameters != nil {
		ch.Parameters = fields.Parameters
	}
	if fields.Tags != nil {
		ch.Tags = fields.Tags
	}
	optional.Apply(fields.ExternalDocs, &ch.ExternalDocs)
	optional.Apply(fields.Bindings, &ch.Bindings)

	syncRootRef(b.doc.Channels, name, references.ToRootChannel(name), newUpsertOptions(opts))
	return b
}

// OperationFields carries the creatable and updatable fields of an operation.
// Action and ChannelName are required when the upsert creates the entry.
type OperationFields struct {
	Action       optional.Val[OperationAction]
	ChannelName  optional.Val[string]
	Title        optional.Val[string]
	Summary      optional.Val[string]
	Description  optional.Val[string]
	Security     []*ReferencedSecurityScheme
	Traits       []*ReferencedOperationTrait
	Messages     []*ReferencedMessage
	Reply        optional.Val[ReferencedOperationReply]
	Tags         []*ReferencedTag
	ExternalDocs optional.Val[ReferencedExternalDocumentation]
	Bindings     optional.Val[ReferencedOperationBindings]
}

// UpsertOperation creates or merge-updates an operation in
// components.operations. The operation's channel must already exist inline in
// components.channels; the stored channel pointer targets #/channels/<name>
// when that channel is linked from the root collection and
// #/components/channels/<name> otherwise.
func (b *Builder) UpsertOperation(name string, fields OperationFields, opts ...UpsertOption) *Builder {
	if b.err != nil {
		return b
	}

	op, err := upsertTarget(b.doc.Components.ensureOperations(), name, "operation")
	if err != nil {
		return b.fail(err)
	}

	if op == nil {
		var missing []string
		if !fields.Action.IsSet() {
			missing = append(missing, "action")
		}
		if !fields.ChannelName.IsSet() {
			missing = append(missing, "channel")
		}
		if len(missing) > 0 {
			return b.fail(fmt.Errorf("operation %q requires fields %v: %w", name, missing, ErrMissingField))
		}
	}

	if action, ok := fields.Action.Get(); ok {
		if action != OperationActionSend && action != OperationActionReceive {
			return b.fail(fmt.Errorf("operation %q action must be one of [send, receive] but was %q: %w", name, action, ErrInvalidEnumValue))
		}
	}

	o := newUpsertOptions(opts)

	var channelRef *references.Reference
	if channelName, ok := fields.ChannelName.Get(); ok {
		ref, err := b.resolveChannelRef(channelName, o)
		if err != nil {
			return b.fail(err)
		}
		channelRef = &ref
	}

	if op == nil {
		op = &Operation{}
		b.doc.Components.Operations.Set(name, NewReferenced[Operation](op))
	}

	optional.ApplyValue(fields.Action, &op.Action)
	if channelRef != nil {
		op.Channel = NewReference[Channel](*channelRef)
	}
	optional.Apply(fields.Title, &op.Title)
	optional.Apply(fields.Summary, &op.Summary)
	optional.Apply(fields.Description, &op.Description)
	if fields.Security != nil {
		op.Security = fields.Security
	}
	if fields.Traits != nil {
		op.Traits = fields.Traits
	}
	if fields.Messages != nil {
		op.Messages = fields.Messages
	}
	optional.Apply(fields.Reply, &op.Reply)
	if fields.Tags != nil {
		op.Tags = fields.Tags
	}
	optional.Apply(fields.ExternalDocs, &op.ExternalDocs)
	optional.Apply(fields.Bindings, &op.Bindings)

	syncRootRef(b.doc.Operations, name, references.ToRootOperation(name), o)
	return b
}

// resolveChannelRef checks the named channel exists inline in the registry
// and returns the pointer an operation should use for it. Root-linked
// operations point at the root channel, registry-only operations at the
// components entry.
func (b *Builder) resolveChannelRef(channelName string, o upsertOptions) (references.Reference, error) {
	if err := validateName(channelName, "channel name"); err != nil {
		return "", err
	}

	slot := b.doc.Components.ensureChannels().GetOrZero(channelName)
	if slot == nil {
		return "", fmt.Errorf("channel %q does not exist in components.channels, add it first: %w", channelName, ErrNotFound)
	}
	if slot.IsReference() {
		return "", fmt.Errorf("channel %q is stored as a reference: %w", channelName, ErrStoredAsReference)
	}

	if o.componentOnly {
		return references.ToComponentChannel(channelName), nil
	}
	return references.ToRootChannel(channelName), nil
}

// MessageFields carries the creatable and updatable fields of a message. A
// message has no required fields.
type MessageFields struct {
	Name          optional.Val[string]
	Title         optional.Val[string]
	Summary       optional.Val[string]
	Description   optional.Val[string]
	ContentType   optional.Val[string]
	Headers       optional.Val[ReferencedSchema]
	Payload       optional.Val[ReferencedSchema]
	CorrelationID optional.Val[ReferencedCorrelationID]
	Traits        []*ReferencedMessageTrait
	Tags          []*ReferencedTag
	ExternalDocs  optional.Val[ReferencedExternalDocumentation]
	Bindings      optional.Val[ReferencedMessageBindings]
}

// UpsertMessage creates or merge-updates a message in components.messages.
// Messages have no root collection so there is no root reference to manage;
// channels and operations link to them explicitly.
func (b *Builder) UpsertMessage(name string, fields MessageFields) *Builder {
	if b.err != nil {
		return b
	}

	msg, err := upsertTarget(b.doc.Components.ensureMessages(), name, "message")
	if err != nil {
		return b.fail(err)
	}

	if msg == nil {
		msg = &Message{}
		b.doc.Components.Messages.Set(name, NewReferenced[Message](msg))
	}

	optional.Apply(fields.Name, &msg.Name)
	optional.Apply(fields.Title, &msg.Title)
	optional.Apply(fields.Summary, &msg.Summary)
	optional.Apply(fields.Description, &msg.Description)
	optional.Apply(fields.ContentType, &msg.ContentType)
	optional.Apply(fields.Headers, &msg.Headers)
	optional.Apply(fields.Payload, &msg.Payload)
	optional.Apply(fields.CorrelationID, &msg.CorrelationID)
	if fields.Traits != nil {
		msg.Traits = fields.Traits
	}
	if fields.Tags != nil {
		msg.Tags = fields.Tags
	}
	optional.Apply(fields.ExternalDocs, &msg.ExternalDocs)
	optional.Apply(fields.Bindings, &msg.Bindings)

	return b
}

// upsertTarget validates the name and returns the existing inline object for
// it, nil when the name is free, or an error when the name is illegal or the
// registry entry holds a reference rather than an inline object.
func upsertTarget[T any, V modelPtr[T]](registry *sequencedmap.Map[string, *Referenced[T, V]], name, entity string) (*T, error) {
	if err := validateName(name, entity+" name"); err != nil {
		return nil, err
	}

	slot := registry.GetOrZero(name)
	if slot == nil {
		return nil, nil
	}
	if slot.IsReference() {
		return nil, fmt.Errorf("%s %q is stored as a reference and cannot be updated in place: %w", entity, name, ErrStoredAsReference)
	}
	return slot.GetObject(), nil
}

// syncRootRef rewrites or removes the root collection entry for a registry
// name after an upsert. Root entries always point through the root pointer
// shape, such as #/channels/<name>.
func syncRootRef[T any, V modelPtr[T]](root *sequencedmap.Map[string, *Referenced[T, V]], name string, ref references.Reference, o upsertOptions) {
	if o.componentOnly {
		root.Delete(name)
		return
	}
	root.Set(name, NewReference[T, V](ref))
}

// addRootRef links an existing registry entry from a root collection. Adding
// an already present link is a no-op.
func addRootRef[T any, V modelPtr[T]](b *Builder, registry, root *sequencedmap.Map[string, *Referenced[T, V]], name, entity string, ref references.Reference) *Builder {
	if err := validateName(name, entity+" name"); err != nil {
		return b.fail(err)
	}
	if !registry.Has(name) {
		return b.fail(fmt.Errorf("%s %q does not exist, add it to components first: %w", entity, name, ErrNotFound))
	}
	root.Set(name, NewReference[T, V](ref))
	return b
}

// AddRootServerRef links an existing components server from the root servers
// collection. Adding an already present link is a no-op.
func (b *Builder) AddRootServerRef(name string) *Builder {
	if b.err != nil {
		return b
	}
	return addRootRef(b, b.doc.Components.ensureServers(), b.doc.Servers, name, "server", references.ToComponentServer(name))
}

// AddRootChannelRef links an existing components channel from the root
// channels collection. Adding an already present link is a no-op.
func (b *Builder) AddRootChannelRef(name string) *Builder {
	if b.err != nil {
		return b
	}
	return addRootRef(b, b.doc.Components.ensureChannels(), b.doc.Channels, name, "channel", references.ToRootChannel(name))
}

// AddRootOperationRef links an existing components operation from the root
// operations collection. Adding an already present link is a no-op.
func (b *Builder) AddRootOperationRef(name string) *Builder {
	if b.err != nil {
		return b
	}
	return addRootRef(b, b.doc.Components.ensureOperations(), b.doc.Operations, name, "operation", references.ToRootOperation(name))
}

// RemoveRootServer removes the root link for a server. When cascade is true
// the components entry is deleted as well.
func (b *Builder) RemoveRootServer(name string, cascade bool) *Builder {
	if b.err != nil {
		return b
	}
	if err := validateName(name, "server name"); err != nil {
		return b.fail(err)
	}
	b.doc.Servers.Delete(name)
	if cascade {
		b.doc.Components.ensureServers().Delete(name)
	}
	return b
}

// RemoveRootChannel removes the root link for a channel. When cascade is true
// the components entry is deleted as well.
func (b *Builder) RemoveRootChannel(name string, cascade bool) *Builder {
	if b.err != nil {
		return b
	}
	if err := validateName(name, "channel name"); err != nil {
		return b.fail(err)
	}
	b.doc.Channels.Delete(name)
	if cascade {
		b.doc.Components.ensureChannels().Delete(name)
	}
	return b
}

// RemoveRootOperation removes the root link for an operation. When cascade is
// true the components entry is deleted as well.
func (b *Builder) RemoveRootOperation(name string, cascade bool) *Builder {
	if b.err != nil {
		return b
	}
	if err := validateName(name, "operation name"); err != nil {
		return b.fail(err)
	}
	b.doc.Operations.Delete(name)
	if cascade {
		b.doc.Components.ensureOperations().Delete(name)
	}
	return b
}

// AddMessageToChannel links a components message into a components channel's
// messages map, keyed by the message name. Both entities must exist inline.
// Adding an already linked message is a no-op.
func (b *Builder) AddMessageToChannel(channelName, messageName string) *Builder {
	if b.err != nil {
		return b
	}

	ch, msgRef, err := b.messageLinkTarget(channelName, messageName)
	if err != nil {
		return b.fail(err)
	}

	if ch.Messages == nil {
		ch.Messages = sequencedmap.New[string, *ReferencedMessage]()
	}
	if !ch.Messages.Has(messageName) {
		ch.Messages.Set(messageName, NewReference[Message](msgRef))
	}
	return b
}

// RemoveMessageFromChannel unlinks a message from a components channel's
// messages map. Removing a message that is not linked is an error.
func (b *Builder) RemoveMessageFromChannel(channelName, messageName string) *Builder {
	if b.err != nil {
		return b
	}

	ch, _, err := b.messageLinkTarget(channelName, messageName)
	if err != nil {
		return b.fail(err)
	}

	if !ch.Messages.Delete(messageName) {
		return b.fail(fmt.Errorf("message %q is not linked to channel %q: %w", messageName, channelName, ErrNotPresent))
	}
	return b
}

// AddMessageToOperation appends a reference to a components message onto a
// components operation's messages list. Both entities must exist inline.
// Adding an already present reference is a no-op.
func (b *Builder) AddMessageToOperation(operationName, messageName string) *Builder {
	if b.err != nil {
		return b
	}

	op, msgRef, err := b.operationMessageTarget(operationName, messageName)
	if err != nil {
		return b.fail(err)
	}

	for _, existing := range op.Messages {
		if existing.GetReference() == msgRef {
			return b
		}
	}

	op.Messages = append(op.Messages, NewReference[Message](msgRef))
	return b
}

// RemoveMessageFromOperation removes a message reference from a components
// operation's messages list. Removing a reference that is not present is an
// error.
func (b *Builder) RemoveMessageFromOperation(operationName, messageName string) *Builder {
	if b.err != nil {
		return b
	}

	op, msgRef, err := b.operationMessageTarget(operationName, messageName)
	if err != nil {
		return b.fail(err)
	}

	for i, existing := range op.Messages {
		if existing.GetReference() == msgRef {
			op.Messages = append(op.Messages[:i], op.Messages[i+1:]...)
			return b
		}
	}

	return b.fail(fmt.Errorf("message %q is not linked to operation %q: %w", messageName, operationName, ErrNotPresent))
}

func (b *Builder) messageLinkTarget(channelName, messageName string) (*Channel, references.Reference, error) {
	ch, err := inlineEntry(b.doc.Components.ensureChannels(), channelName, "channel")
	if err != nil {
		return nil, "", err
	}
	if _, err := inlineEntry(b.doc.Components.ensureMessages(), messageName, "message"); err != nil {
		return nil, "", err
	}
	return ch, references.ToComponentMessage(messageName), nil
}

func (b *Builder) operationMessageTarget(operationName, messageName string) (*Operation, references.Reference, error) {
	op, err := inlineEntry(b.doc.Components.ensureOperations(), operationName, "operation")
	if err != nil {
		return nil, "", err
	}
	if _, err := inlineEntry(b.doc.Components.ensureMessages(), messageName, "message"); err != nil {
		return nil, "", err
	}
	return op, references.ToComponentMessage(messageName), nil
}

// inlineEntry returns the inline object stored in the registry under the
// name, erroring when the name is absent or the entry holds a reference.
func inlineEntry[T any, V modelPtr[T]](registry *sequencedmap.Map[string, *Referenced[T, V]], name, entity string) (*T, error) {
	slot := registry.GetOrZero(name)
	if slot == nil {
		return nil, fmt.Errorf("%s %q: %w", entity, name, ErrNotFound)
	}
	if slot.IsReference() {
		return nil, fmt.Errorf("%s %q is stored as a reference: %w", entity, name, ErrStoredAsReference)
	}
	obj := slot.GetObject()
	if obj == nil {
		return nil, fmt.Errorf("%s %q: %w", entity, name, ErrNilValue)
	}
	return obj, nil
}

// SetSchema stores a schema in components.schemas under a validated name.
func (b *Builder) SetSchema(name string, schema *Schema) *Builder {
	return setComponent(b, b.doc.Components.ensureSchemas, name, "schema", schema)
}

// SetSecurityScheme stores a security scheme in components.securitySchemes.
func (b *Builder) SetSecurityScheme(name string, scheme *SecurityScheme) *Builder {
	return setComponent(b, b.doc.Components.ensureSecuritySchemes, name, "security scheme", scheme)
}

// SetServerVariable stores a server variable in components.serverVariables.
func (b *Builder) SetServerVariable(name string, variable *ServerVariable) *Builder {
	return setComponent(b, b.doc.Components.ensureServerVariables, name, "server variable", variable)
}

// SetParameter stores a parameter in components.parameters.
func (b *Builder) SetParameter(name string, parameter *Parameter) *Builder {
	return setComponent(b, b.doc.Components.ensureParameters, name, "parameter", parameter)
}

// SetCorrelationID stores a correlation ID in components.correlationIds.
func (b *Builder) SetCorrelationID(name string, correlationID *CorrelationID) *Builder {
	return setComponent(b, b.doc.Components.ensureCorrelationIDs, name, "correlation ID", correlationID)
}

// SetReply stores an operation reply in components.replies.
func (b *Builder) SetReply(name string, reply *OperationReply) *Builder {
	return setComponent(b, b.doc.Components.ensureReplies, name, "reply", reply)
}

// SetReplyAddress stores an operation reply address in
// components.replyAddresses.
func (b *Builder) SetReplyAddress(name string, address *OperationReplyAddress) *Builder {
	return setComponent(b, b.doc.Components.ensureReplyAddresses, name, "reply address", address)
}

// SetExternalDocs stores external documentation in components.externalDocs.
func (b *Builder) SetExternalDocs(name string, docs *ExternalDocumentation) *Builder {
	return setComponent(b, b.doc.Components.ensureExternalDocs, name, "external documentation", docs)
}

// SetOperationTrait stores an operation trait in components.operationTraits.
func (b *Builder) SetOperationTrait(name string, trait *OperationTrait) *Builder {
	return setComponent(b, b.doc.Components.ensureOperationTraits, name, "operation trait", trait)
}

// SetMessageTrait stores a message trait in components.messageTraits.
func (b *Builder) SetMessageTrait(name string, trait *MessageTrait) *Builder {
	return setComponent(b, b.doc.Components.ensureMessageTraits, name, "message trait", trait)
}

// SetServerBindings stores a server bindings object in
// components.serverBindings.
func (b *Builder) SetServerBindings(name string, bindings *ServerBindings) *Builder {
	return setComponent(b, b.doc.Components.ensureServerBindings, name, "server bindings", bindings)
}

// SetChannelBindings stores a channel bindings object in
// components.channelBindings.
func (b *Builder) SetChannelBindings(name string, bindings *ChannelBindings) *Builder {
	return setComponent(b, b.doc.Components.ensureChannelBindings, name, "channel bindings", bindings)
}

// SetOperationBindings stores an operation bindings object in
// components.operationBindings.
func (b *Builder) SetOperationBindings(name string, bindings *OperationBindings) *Builder {
	return setComponent(b, b.doc.Components.ensureOperationBindings, name, "operation bindings", bindings)
}

// SetMessageBindings stores a message bindings object in
// components.messageBindings.
func (b *Builder) SetMessageBindings(name string, bindings *MessageBindings) *Builder {
	return setComponent(b, b.doc.Components.ensureMessageBindings, name, "message bindings", bindings)
}

func setComponent[T any, V modelPtr[T]](b *Builder, registry func() *sequencedmap.Map[string, *Referenced[T, V]], name, entity string, value *T) *Builder {
	if b.err != nil {
		return b
	}
	if err := validateName(name, entity+" name"); err != nil {
		return b.fail(err)
	}
	if value == nil {
		return b.fail(fmt.Errorf("%s %q: %w", entity, name, ErrNilValue))
	}

	reg := registry()
	if existing := reg.GetOrZero(name); existing != nil && existing.IsReference() {
		return b.fail(fmt.Errorf("%s %q is stored as a reference and cannot be updated in place: %w", entity, name, ErrStoredAsReference))
	}

	reg.Set(name, NewReferenced[T, V](value))
	return b
}

// Spec validates the draft, promotes inline tags into components.tags and
// returns the assembled document together with any tag conflicts encountered.
func (b *Builder) Spec(ctx context.Context) (*AsyncAPI, []TagConflict, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	if errs := b.doc.Validate(ctx); len(errs) > 0 {
		return nil, nil, stderrors.Join(errs...)
	}

	conflicts := PromoteTags(ctx, b.doc)
	return b.doc, conflicts, nil
}

// YAML renders the assembled document as YAML.
func (b *Builder) YAML(ctx context.Context) ([]byte, error) {
	doc, _, err := b.Spec(ctx)
	if err != nil {
		return nil, err
	}

	cfg := yml.GetConfigFromContext(ctx)
	cfg.OutputFormat = yml.OutputFormatYAML

	var buf bytes.Buffer
	if err := Marshal(yml.ContextWithConfig(ctx, cfg), doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON renders the assembled document as JSON with the provided indentation.
func (b *Builder) JSON(ctx context.Context, indentation int, ensureASCII bool) ([]byte, error) {
	doc, _, err := b.Spec(ctx)
	if err != nil {
		return nil, err
	}

	cfg := yml.GetConfigFromContext(ctx)
	cfg.OutputFormat = yml.OutputFormatJSON
	cfg.Indentation = indentation
	cfg.EnsureASCII = ensureASCII

	var buf bytes.Buffer
	if err := Marshal(yml.ContextWithConfig(ctx, cfg), doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
