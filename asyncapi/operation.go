package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// OperationAction describes whether the application is sending to or receiving from a channel.
type OperationAction string

const (
	// OperationActionSend indicates the application will send messages to the channel.
	OperationActionSend OperationAction = "send"
	// OperationActionReceive indicates the application will receive messages from the channel.
	OperationActionReceive OperationAction = "receive"
)

// Operation describes a specific operation the application performs against a channel.
type Operation struct {
	// Action indicates whether this operation sends to or receives from the channel. Either "send" or "receive".
	Action OperationAction
	// Channel is a $ref pointer to the definition of the channel this operation is performed on.
	Channel *ReferencedChannel
	// Title is a human-friendly title for the operation.
	Title *string
	// Summary is a short summary of the operation.
	Summary *string
	// Description is an optional description of the operation.
	Description *string
	// Security is a declaration of which security schemes are associated with this operation.
	Security []*ReferencedSecurityScheme
	// Tags is a list of tags for logical grouping and categorization of operations.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation for this operation.
	ExternalDocs *ReferencedExternalDocumentation
	// Bindings is a map where the keys describe the name of the protocol and the values describe protocol-specific definitions for the operation.
	Bindings *ReferencedOperationBindings
	// Traits is a list of traits to apply to the operation object.
	Traits []*ReferencedOperationTrait
	// Messages is a list of $ref pointers to the supported message definitions within the operation's channel.
	Messages []*ReferencedMessage
	// Reply is the definition of the reply in a request-reply operation.
	Reply *ReferencedOperationReply

	// Extensions provides a list of extensions to the Operation object.
	Extensions *extensions.Extensions
}

var _ model = (*Operation)(nil)

func (o *Operation) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("action", string(o.Action))
	appendObject(ctx, &b, "channel", o.Channel)
	b.strPtr("title", o.Title)
	b.strPtr("summary", o.Summary)
	b.strPtr("description", o.Description)
	appendSlice(ctx, &b, "security", o.Security)
	appendSlice(ctx, &b, "tags", o.Tags)
	appendObject(ctx, &b, "externalDocs", o.ExternalDocs)
	appendObject(ctx, &b, "bindings", o.Bindings)
	appendSlice(ctx, &b, "traits", o.Traits)
	appendSlice(ctx, &b, "messages", o.Messages)
	appendObject(ctx, &b, "reply", o.Reply)
	b.ext(o.Extensions)
	return b.node()
}

func (o *Operation) fromNode(node *yaml.Node) []error {
	var action string
	errs := decodeObject(node, &o.Extensions, map[string]fieldDecoder{
		"action":       expectString(&action),
		"channel":      expectObject[ReferencedChannel](&o.Channel),
		"title":        expectStringPtr(&o.Title),
		"summary":      expectStringPtr(&o.Summary),
		"description":  expectStringPtr(&o.Description),
		"security":     expectSlice[ReferencedSecurityScheme](&o.Security),
		"tags":         expectSlice[ReferencedTag](&o.Tags),
		"externalDocs": expectObject[ReferencedExternalDocumentation](&o.ExternalDocs),
		"bindings":     expectObject[ReferencedOperationBindings](&o.Bindings),
		"traits":       expectSlice[ReferencedOperationTrait](&o.Traits),
		"messages":     expectSlice[ReferencedMessage](&o.Messages),
		"reply":        expectObject[ReferencedOperationReply](&o.Reply),
	})
	o.Action = OperationAction(action)
	return errs
}

// Validate will validate the Operation object against the AsyncAPI Specification.
func (o *Operation) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	switch o.Action {
	case OperationActionSend, OperationActionReceive:
	case "":
		errs = append(errs, validation.NewError("operation.action is required"))
	default:
		errs = append(errs, validation.NewError("operation.action must be one of [send, receive] but was %q", o.Action))
	}

	if o.Channel == nil {
		errs = append(errs, validation.NewError("operation.channel is required"))
	} else {
		errs = append(errs, o.Channel.Validate(ctx, opts...)...)
	}

	for _, scheme := range o.Security {
		errs = append(errs, scheme.Validate(ctx, opts...)...)
	}

	for _, tag := range o.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if o.ExternalDocs != nil {
		errs = append(errs, o.ExternalDocs.Validate(ctx, opts...)...)
	}

	if o.Bindings != nil {
		errs = append(errs, o.Bindings.Validate(ctx, opts...)...)
	}

	for _, trait := range o.Traits {
		errs = append(errs, trait.Validate(ctx, opts...)...)
	}

	for _, msg := range o.Messages {
		errs = append(errs, msg.Validate(ctx, opts...)...)
	}

	if o.Reply != nil {
		errs = append(errs, o.Reply.Validate(ctx, opts...)...)
	}

	errs = append(errs, o.Extensions.Validate()...)

	return errs
}

// OperationTrait describes a trait that MAY be applied to an Operation object.
type OperationTrait struct {
	// Title is a human-friendly title for the operation.
	Title *string
	// Summary is a short summary of the operation.
	Summary *string
	// Description is an optional description of the operation.
	Description *string
	// Security is a declaration of which security schemes are associated with this operation.
	Security []*ReferencedSecurityScheme
	// Tags is a list of tags for logical grouping and categorization of operations.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation for this operation.
	ExternalDocs *ReferencedExternalDocumentation
	// Bindings is a map where the keys describe the name of the protocol and the values describe protocol-specific definitions for the operation.
	Bindings *ReferencedOperationBindings

	// Extensions provides a list of extensions to the OperationTrait object.
	Extensions *extensions.Extensions
}

var _ model = (*OperationTrait)(nil)

func (o *OperationTrait) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.strPtr("title", o.Title)
	b.strPtr("summary", o.Summary)
	b.strPtr("description", o.Description)
	appendSlice(ctx, &b, "security", o.Security)
	appendSlice(ctx, &b, "tags", o.Tags)
	appendObject(ctx, &b, "externalDocs", o.ExternalDocs)
	appendObject(ctx, &b, "bindings", o.Bindings)
	b.ext(o.Extensions)
	return b.node()
}

func (o *OperationTrait) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &o.Extensions, map[string]fieldDecoder{
		"title":        expectStringPtr(&o.Title),
		"summary":      expectStringPtr(&o.Summary),
		"description":  expectStringPtr(&o.Description),
		"security":     expectSlice[ReferencedSecurityScheme](&o.Security),
		"tags":         expectSlice[ReferencedTag](&o.Tags),
		"externalDocs": expectObject[ReferencedExternalDocumentation](&o.ExternalDocs),
		"bindings":     expectObject[ReferencedOperationBindings](&o.Bindings),
	})
}

// Validate will validate the OperationTrait object against the AsyncAPI Specification.
func (o *OperationTrait) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	for _, scheme := range o.Security {
		errs = append(errs, scheme.Validate(ctx, opts...)...)
	}

	for _, tag := range o.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if o.ExternalDocs != nil {
		errs = append(errs, o.ExternalDocs.Validate(ctx, opts...)...)
	}

	if o.Bindings != nil {
		errs = append(errs, o.Bindings.Validate(ctx, opts...)...)
	}

	errs = append(errs, o.Extensions.Validate()...)

	return errs
}

// OperationReply describes the reply part of a request-reply operation.
type OperationReply struct {
	// Address is the definition of the address that implementations MUST use for the reply.
	Address *ReferencedOperationReplyAddress
	// Channel is a $ref pointer to the definition of the channel in which this operation is performed.
	Channel *ReferencedChannel
	// Messages is a list of $ref pointers to the supported message definitions within the reply channel.
	Messages []*ReferencedMessage

	// Extensions provides a list of extensions to the OperationReply object.
	Extensions *extensions.Extensions
}

var _ model = (*OperationReply)(nil)

func (o *OperationReply) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	appendObject(ctx, &b, "address", o.Address)
	appendObject(ctx, &b, "channel", o.Channel)
	appendSlice(ctx, &b, "messages", o.Messages)
	b.ext(o.Extensions)
	return b.node()
}

func (o *OperationReply) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &o.Extensions, map[string]fieldDecoder{
		"address":  expectObject[ReferencedOperationReplyAddress](&o.Address),
		"channel":  expectObject[ReferencedChannel](&o.Channel),
		"messages": expectSlice[ReferencedMessage](&o.Messages),
	})
}

// Validate will validate the OperationReply object against the AsyncAPI Specification.
func (o *OperationReply) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	if o.Address != nil {
		errs = append(errs, o.Address.Validate(ctx, opts...)...)
	}

	if o.Channel != nil {
		errs = append(errs, o.Channel.Validate(ctx, opts...)...)
	}

	for _, msg := range o.Messages {
		errs = append(errs, msg.Validate(ctx, opts...)...)
	}

	errs = append(errs, o.Extensions.Validate()...)

	return errs
}

// OperationReplyAddress is an object representing the address to which the reply should be sent.
type OperationReplyAddress struct {
	// Location is a runtime expression that specifies the location of the reply address.
	Location string
	// Description is an optional description of the address.
	Description *string

	// Extensions provides a list of extensions to the OperationReplyAddress object.
	Extensions *extensions.Extensions
}

var _ model = (*OperationReplyAddress)(nil)

func (o *OperationReplyAddress) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("location", o.Location)
	b.strPtr("description", o.Description)
	b.ext(o.Extensions)
	return b.node()
}

func (o *OperationReplyAddress) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &o.Extensions, map[string]fieldDecoder{
		"location":    expectString(&o.Location),
		"description": expectStringPtr(&o.Description),
	})
}

// Validate will validate the OperationReplyAddress object against the AsyncAPI Specification.
func (o *OperationReplyAddress) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if o.Location == "" {
		errs = append(errs, validation.NewError("operationReplyAddress.location is required"))
	}

	errs = append(errs, o.Extensions.Validate()...)

	return errs
}
