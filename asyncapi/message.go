package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Message describes a message received on a given channel and operation.
type Message struct {
	// Headers is the schema definition of the application headers.
	Headers *ReferencedSchema
	// Payload is the definition of the message payload.
	Payload *ReferencedSchema
	// CorrelationID is the definition of the correlation ID used for message tracing or matching.
	CorrelationID *ReferencedCorrelationID
	// ContentType is the content type to use when encoding/decoding a message's payload.
	ContentType *string
	// Name is a machine-friendly name for the message.
	Name *string
	// Title is a human-friendly title for the message.
	Title *string
	// Summary is a short summary of what the message is about.
	Summary *string
	// Description is a verbose explanation of the message.
	Description *string
	// Tags is a list of tags for logical grouping and categorization of messages.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation for this message.
	ExternalDocs *ReferencedExternalDocumentation
	// Bindings is a map where the keys describe the name of the protocol and the values describe protocol-specific definitions for the message.
	Bindings *ReferencedMessageBindings
	// Examples is a list of examples of valid message objects.
	Examples []*yaml.Node
	// Traits is a list of traits to apply to the message object.
	Traits []*ReferencedMessageTrait

	// Extensions provides a list of extensions to the Message object.
	Extensions *extensions.Extensions
}

var _ model = (*Message)(nil)

func (m *Message) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	appendObject(ctx, &b, "headers", m.Headers)
	appendObject(ctx, &b, "payload", m.Payload)
	appendObject(ctx, &b, "correlationId", m.CorrelationID)
	b.strPtr("contentType", m.ContentType)
	b.strPtr("name", m.Name)
	b.strPtr("title", m.Title)
	b.strPtr("summary", m.Summary)
	b.strPtr("description", m.Description)
	appendSlice(ctx, &b, "tags", m.Tags)
	appendObject(ctx, &b, "externalDocs", m.ExternalDocs)
	appendObject(ctx, &b, "bindings", m.Bindings)
	b.nodeSlice("examples", m.Examples)
	appendSlice(ctx, &b, "traits", m.Traits)
	b.ext(m.Extensions)
	return b.node()
}

func (m *Message) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &m.Extensions, map[string]fieldDecoder{
		"headers":       expectObject[ReferencedSchema](&m.Headers),
		"payload":       expectObject[ReferencedSchema](&m.Payload),
		"correlationId": expectObject[ReferencedCorrelationID](&m.CorrelationID),
		"contentType":   expectStringPtr(&m.ContentType),
		"name":          expectStringPtr(&m.Name),
		"title":         expectStringPtr(&m.Title),
		"summary":       expectStringPtr(&m.Summary),
		"description":   expectStringPtr(&m.Description),
		"tags":          expectSlice[ReferencedTag](&m.Tags),
		"externalDocs":  expectObject[ReferencedExternalDocumentation](&m.ExternalDocs),
		"bindings":      expectObject[ReferencedMessageBindings](&m.Bindings),
		"examples":      expectNodeSlice(&m.Examples),
		"traits":        expectSlice[ReferencedMessageTrait](&m.Traits),
	})
}

// Validate will validate the Message object against the AsyncAPI Specification.
func (m *Message) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	if m.Headers != nil {
		errs = append(errs, m.Headers.Validate(ctx, opts...)...)
	}

	if m.Payload != nil {
		errs = append(errs, m.Payload.Validate(ctx, opts...)...)
	}

	if m.CorrelationID != nil {
		errs = append(errs, m.CorrelationID.Validate(ctx, opts...)...)
	}

	for _, tag := range m.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if m.ExternalDocs != nil {
		errs = append(errs, m.ExternalDocs.Validate(ctx, opts...)...)
	}

	if m.Bindings != nil {
		errs = append(errs, m.Bindings.Validate(ctx, opts...)...)
	}

	for _, trait := range m.Traits {
		errs = append(errs, trait.Validate(ctx, opts...)...)
	}

	errs = append(errs, m.Extensions.Validate()...)

	return errs
}

// MessageTrait describes a trait that MAY be applied to a Message object.
type MessageTrait struct {
	// Headers is the schema definition of the application headers.
	Headers *ReferencedSchema
	// CorrelationID is the definition of the correlation ID used for message tracing or matching.
	CorrelationID *ReferencedCorrelationID
	// ContentType is the content type to use when encoding/decoding a message's payload.
	ContentType *string
	// Name is a machine-friendly name for the message.
	Name *string
	// Title is a human-friendly title for the message.
	Title *string
	// Summary is a short summary of what the message is about.
	Summary *string
	// Description is a verbose explanation of the message.
	Description *string
	// Tags is a list of tags for logical grouping and categorization of messages.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation for this message.
	ExternalDocs *ReferencedExternalDocumentation
	// Bindings is a map where the keys describe the name of the protocol and the values describe protocol-specific definitions for the message.
	Bindings *ReferencedMessageBindings
	// Examples is a list of examples of valid message objects.
	Examples []*yaml.Node

	// Extensions provides a list of extensions to the MessageTrait object.
	Extensions *extensions.Extensions
}

var _ model = (*MessageTrait)(nil)

func (m *MessageTrait) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	appendObject(ctx, &b, "headers", m.Headers)
	appendObject(ctx, &b, "correlationId", m.CorrelationID)
	b.strPtr("contentType", m.ContentType)
	b.strPtr("name", m.Name)
	b.strPtr("title", m.Title)
	b.strPtr("summary", m.Summary)
	b.strPtr("description", m.Description)
	appendSlice(ctx, &b, "tags", m.Tags)
	appendObject(ctx, &b, "externalDocs", m.ExternalDocs)
	appendObject(ctx, &b, "bindings", m.Bindings)
	b.nodeSlice("examples", m.Examples)
	b.ext(m.Extensions)
	return b.node()
}

func (m *MessageTrait) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &m.Extensions, map[string]fieldDecoder{
		"headers":       expectObject[ReferencedSchema](&m.Headers),
		"correlationId": expectObject[ReferencedCorrelationID](&m.CorrelationID),
		"contentType":   expectStringPtr(&m.ContentType),
		"name":          expectStringPtr(&m.Name),
		"title":         expectStringPtr(&m.Title),
		"summary":       expectStringPtr(&m.Summary),
		"description":   expectStringPtr(&m.Description),
		"tags":          expectSlice[ReferencedTag](&m.Tags),
		"externalDocs":  expectObject[ReferencedExternalDocumentation](&m.ExternalDocs),
		"bindings":      expectObject[ReferencedMessageBindings](&m.Bindings),
		"examples":      expectNodeSlice(&m.Examples),
	})
}

// Validate will validate the MessageTrait object against the AsyncAPI Specification.
func (m *MessageTrait) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	if m.Headers != nil {
		errs = append(errs, m.Headers.Validate(ctx, opts...)...)
	}

	if m.CorrelationID != nil {
		errs = append(errs, m.CorrelationID.Validate(ctx, opts...)...)
	}

	for _, tag := range m.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if m.ExternalDocs != nil {
		errs = append(errs, m.ExternalDocs.Validate(ctx, opts...)...)
	}

	if m.Bindings != nil {
		errs = append(errs, m.Bindings.Validate(ctx, opts...)...)
	}

	errs = append(errs, m.Extensions.Validate()...)

	return errs
}

// CorrelationID is an object that specifies an identifier at design time that can be used for message tracing and correlation.
type CorrelationID struct {
	// Location is a runtime expression that specifies the location of the correlation ID.
	Location string
	// Description is an optional description of the identifier.
	Description *string

	// Extensions provides a list of extensions to the CorrelationID object.
	Extensions *extensions.Extensions
}

var _ model = (*CorrelationID)(nil)

func (c *CorrelationID) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("location", c.Location)
	b.strPtr("description", c.Description)
	b.ext(c.Extensions)
	return b.node()
}

func (c *CorrelationID) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &c.Extensions, map[string]fieldDecoder{
		"location":    expectString(&c.Location),
		"description": expectStringPtr(&c.Description),
	})
}

// Validate will validate the CorrelationID object against the AsyncAPI Specification.
func (c *CorrelationID) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if c.Location == "" {
		errs = append(errs, validation.NewError("correlationId.location is required"))
	}

	errs = append(errs, c.Extensions.Validate()...)

	return errs
}
