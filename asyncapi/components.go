package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Components holds a set of reusable objects for different aspects of the
// AsyncAPI Specification. All objects defined within the components object
// have no effect on the API unless they are explicitly referenced.
type Components struct {
	Schemas           *sequencedmap.Map[string, *ReferencedSchema]
	Servers           *sequencedmap.Map[string, *ReferencedServer]
	Channels          *sequencedmap.Map[string, *ReferencedChannel]
	Operations        *sequencedmap.Map[string, *ReferencedOperation]
	Messages          *sequencedmap.Map[string, *ReferencedMessage]
	SecuritySchemes   *sequencedmap.Map[string, *ReferencedSecurityScheme]
	ServerVariables   *sequencedmap.Map[string, *ReferencedServerVariable]
	Parameters        *sequencedmap.Map[string, *ReferencedParameter]
	CorrelationIDs    *sequencedmap.Map[string, *ReferencedCorrelationID]
	Replies           *sequencedmap.Map[string, *ReferencedOperationReply]
	ReplyAddresses    *sequencedmap.Map[string, *ReferencedOperationReplyAddress]
	ExternalDocs      *sequencedmap.Map[string, *ReferencedExternalDocumentation]
	Tags              *sequencedmap.Map[string, *ReferencedTag]
	OperationTraits   *sequencedmap.Map[string, *ReferencedOperationTrait]
	MessageTraits     *sequencedmap.Map[string, *ReferencedMessageTrait]
	ServerBindings    *sequencedmap.Map[string, *ReferencedServerBindings]
	ChannelBindings   *sequencedmap.Map[string, *ReferencedChannelBindings]
	OperationBindings *sequencedmap.Map[string, *ReferencedOperationBindings]
	MessageBindings   *sequencedmap.Map[string, *ReferencedMessageBindings]

	// Extensions provides a list of extensions to the Components object.
	Extensions *extensions.Extensions
}

var _ model = (*Components)(nil)

func (c *Components) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	appendMap(ctx, &b, "schemas", c.Schemas)
	appendMap(ctx, &b, "servers", c.Servers)
	appendMap(ctx, &b, "channels", c.Channels)
	appendMap(ctx, &b, "operations", c.Operations)
	appendMap(ctx, &b, "messages", c.Messages)
	appendMap(ctx, &b, "securitySchemes", c.SecuritySchemes)
	appendMap(ctx, &b, "serverVariables", c.ServerVariables)
	appendMap(ctx, &b, "parameters", c.Parameters)
	appendMap(ctx, &b, "correlationIds", c.CorrelationIDs)
	appendMap(ctx, &b, "replies", c.Replies)
	appendMap(ctx, &b, "replyAddresses", c.ReplyAddresses)
	appendMap(ctx, &b, "externalDocs", c.ExternalDocs)
	appendMap(ctx, &b, "tags", c.Tags)
	appendMap(ctx, &b, "operationTraits", c.OperationTraits)
	appendMap(ctx, &b, "messageTraits", c.MessageTraits)
	appendMap(ctx, &b, "serverBindings", c.ServerBindings)
	appendMap(ctx, &b, "channelBindings", c.ChannelBindings)
	appendMap(ctx, &b, "operationBindings", c.OperationBindings)
	appendMap(ctx, &b, "messageBindings", c.MessageBindings)
	b.ext(c.Extensions)
	return b.node()
}

func (c *Components) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &c.Extensions, map[string]fieldDecoder{
		"schemas":           expectMap[ReferencedSchema](&c.Schemas),
		"servers":           expectMap[ReferencedServer](&c.Servers),
		"channels":          expectMap[ReferencedChannel](&c.Channels),
		"operations":        expectMap[ReferencedOperation](&c.Operations),
		"messages":          expectMap[ReferencedMessage](&c.Messages),
		"securitySchemes":   expectMap[ReferencedSecurityScheme](&c.SecuritySchemes),
		"serverVariables":   expectMap[ReferencedServerVariable](&c.ServerVariables),
		"parameters":        expectMap[ReferencedParameter](&c.Parameters),
		"correlationIds":    expectMap[ReferencedCorrelationID](&c.CorrelationIDs),
		"replies":           expectMap[ReferencedOperationReply](&c.Replies),
		"replyAddresses":    expectMap[ReferencedOperationReplyAddress](&c.ReplyAddresses),
		"externalDocs":      expectMap[ReferencedExternalDocumentation](&c.ExternalDocs),
		"tags":              expectMap[ReferencedTag](&c.Tags),
		"operationTraits":   expectMap[ReferencedOperationTrait](&c.OperationTraits),
		"messageTraits":     expectMap[ReferencedMessageTrait](&c.MessageTraits),
		"serverBindings":    expectMap[ReferencedServerBindings](&c.ServerBindings),
		"channelBindings":   expectMap[ReferencedChannelBindings](&c.ChannelBindings),
		"operationBindings": expectMap[ReferencedOperationBindings](&c.OperationBindings),
		"messageBindings":   expectMap[ReferencedMessageBindings](&c.MessageBindings),
	})
}

// Validate will validate the Components object against the AsyncAPI Specification.
func (c *Components) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	errs = append(errs, validateComponentMap(ctx, "schemas", c.Schemas, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "servers", c.Servers, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "channels", c.Channels, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "operations", c.Operations, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "messages", c.Messages, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "securitySchemes", c.SecuritySchemes, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "serverVariables", c.ServerVariables, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "parameters", c.Parameters, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "correlationIds", c.CorrelationIDs, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "replies", c.Replies, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "replyAddresses", c.ReplyAddresses, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "externalDocs", c.ExternalDocs, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "tags", c.Tags, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "operationTraits", c.OperationTraits, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "messageTraits", c.MessageTraits, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "serverBindings", c.ServerBindings, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "channelBindings", c.ChannelBindings, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "operationBindings", c.OperationBindings, opts...)...)
	errs = append(errs, validateComponentMap(ctx, "messageBindings", c.MessageBindings, opts...)...)

	errs = append(errs, c.Extensions.Validate()...)

	return errs
}

// The ensure accessors initialize a kind map on first use so callers can
// populate the registry without null-checking every container.

func (c *Components) ensureSchemas() *sequencedmap.Map[string, *ReferencedSchema] {
	if c.Schemas == nil {
		c.Schemas = sequencedmap.New[string, *ReferencedSchema]()
	}
	return c.Schemas
}

func (c *Components) ensureServers() *sequencedmap.Map[string, *ReferencedServer] {
	if c.Servers == nil {
		c.Servers = sequencedmap.New[string, *ReferencedServer]()
	}
	return c.Servers
}

func (c *Components) ensureChannels() *sequencedmap.Map[string, *ReferencedChannel] {
	if c.Channels == nil {
		c.Channels = sequencedmap.New[string, *ReferencedChannel]()
	}
	return c.Channels
}

func (c *Components) ensureOperations() *sequencedmap.Map[string, *ReferencedOperation] {
	if c.Operations == nil {
		c.Operations = sequencedmap.New[string, *ReferencedOperation]()
	}
	return c.Operations
}

func (c *Components) ensureMessages() *sequencedmap.Map[string, *ReferencedMessage] {
	if c.Messages == nil {
		c.Messages = sequencedmap.New[string, *ReferencedMessage]()
	}
	return c.Messages
}

func (c *Components) ensureSecuritySchemes() *sequencedmap.Map[string, *ReferencedSecurityScheme] {
	if c.SecuritySchemes == nil {
		c.SecuritySchemes = sequencedmap.New[string, *ReferencedSecurityScheme]()
	}
	return c.SecuritySchemes
}

func (c *Components) ensureServerVariables() *sequencedmap.Map[string, *ReferencedServerVariable] {
	if c.ServerVariables == nil {
		c.ServerVariables = sequencedmap.New[string, *ReferencedServerVariable]()
	}
	return c.ServerVariables
}

func (c *Components) ensureParameters() *sequencedmap.Map[string, *ReferencedParameter] {
	if c.Parameters == nil {
		c.Parameters = sequencedmap.New[string, *ReferencedParameter]()
	}
	return c.Parameters
}

func (c *Components) ensureCorrelationIDs() *sequencedmap.Map[string, *ReferencedCorrelationID] {
	if c.CorrelationIDs == nil {
		c.CorrelationIDs = sequencedmap.New[string, *ReferencedCorrelationID]()
	}
	return c.CorrelationIDs
}

func (c *Components) ensureReplies() *sequencedmap.Map[string, *ReferencedOperationReply] {
	if c.Replies == nil {
		c.Replies = sequencedmap.New[string, *ReferencedOperationReply]()
	}
	return c.Replies
}

func (c *Components) ensureReplyAddresses() *sequencedmap.Map[string, *ReferencedOperationReplyAddress] {
	if c.ReplyAddresses == nil {
		c.ReplyAddresses = sequencedmap.New[string, *ReferencedOperationReplyAddress]()
	}
	return c.ReplyAddresses
}

func (c *Components) ensureExternalDocs() *sequencedmap.Map[string, *ReferencedExternalDocumentation] {
	if c.ExternalDocs == nil {
		c.ExternalDocs = sequencedmap.New[string, *ReferencedExternalDocumentation]()
	}
	return c.ExternalDocs
}

func (c *Components) ensureTags() *sequencedmap.Map[string, *ReferencedTag] {
	if c.Tags == nil {
		c.Tags = sequencedmap.New[string, *ReferencedTag]()
	}
	return c.Tags
}

func (c *Components) ensureOperationTraits() *sequencedmap.Map[string, *ReferencedOperationTrait] {
	if c.OperationTraits == nil {
		c.OperationTraits = sequencedmap.New[string, *ReferencedOperationTrait]()
	}
	return c.OperationTraits
}

func (c *Components) ensureMessageTraits() *sequencedmap.Map[string, *ReferencedMessageTrait] {
	if c.MessageTraits == nil {
		c.MessageTraits = sequencedmap.New[string, *ReferencedMessageTrait]()
	}
	return c.MessageTraits
}

func (c *Components) ensureServerBindings() *sequencedmap.Map[string, *ReferencedServerBindings] {
	if c.ServerBindings == nil {
		c.ServerBindings = sequencedmap.New[string, *ReferencedServerBindings]()
	}
	return c.ServerBindings
}

func (c *Components) ensureChannelBindings() *sequencedmap.Map[string, *ReferencedChannelBindings] {
	if c.ChannelBindings == nil {
		c.ChannelBindings = sequencedmap.New[string, *ReferencedChannelBindings]()
	}
	return c.ChannelBindings
}

func (c *Components) ensureOperationBindings() *sequencedmap.Map[string, *ReferencedOperationBindings] {
	if c.OperationBindings == nil {
		c.OperationBindings = sequencedmap.New[string, *ReferencedOperationBindings]()
	}
	return c.OperationBindings
}

func (c *Components) ensureMessageBindings() *sequencedmap.Map[string, *ReferencedMessageBindings] {
	if c.MessageBindings == nil {
		c.MessageBindings = sequencedmap.New[string, *ReferencedMessageBindings]()
	}
	return c.MessageBindings
}

func validateComponentMap[T any, V modelPtr[T]](ctx context.Context, kind string, m *sequencedmap.Map[string, *T], opts ...validation.Option) []error {
	errs := []error{}
	for name, component := range m.All() {
		if err := validateName(name, "components."+kind+" key"); err != nil {
			errs = append(errs, err)
		}
		if component == nil {
			errs = append(errs, validation.NewError("components.%s.%s must not be null", kind, name))
			continue
		}
		errs = append(errs, V(component).Validate(ctx, opts...)...)
	}
	return errs
}
