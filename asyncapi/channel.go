package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Channel describes a shared communication channel that messages are addressed to.
type Channel struct {
	// Address is an optional string representation of this channel's address.
	Address *string
	// Messages is a map of the messages that will be sent to this channel by any application at any time.
	Messages *sequencedmap.Map[string, *ReferencedMessage]
	// Title is a human-friendly title for the channel.
	Title *string
	// Summary is a short summary of the channel.
	Summary *string
	// Description is an optional description of this channel.
	Description *string
	// Servers is an array of $ref pointers to the definition of the servers in which this channel is available.
	Servers []*ReferencedServer
	// Parameters is a map of the parameters included in the channel address.
	Parameters *sequencedmap.Map[string, *ReferencedParameter]
	// Tags is a list of tags for logical grouping of channels.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation for this channel.
	ExternalDocs *ReferencedExternalDocumentation
	// Bindings is a map where the keys describe the name of the protocol and the values describe protocol-specific definitions for the channel.
	Bindings *ReferencedChannelBindings

	// Extensions provides a list of extensions to the Channel object.
	Extensions *extensions.Extensions
}

var _ model = (*Channel)(nil)

func (c *Channel) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.strPtr("address", c.Address)
	appendMap(ctx, &b, "messages", c.Messages)
	b.strPtr("title", c.Title)
	b.strPtr("summary", c.Summary)
	b.strPtr("description", c.Description)
	appendSlice(ctx, &b, "servers", c.Servers)
	appendMap(ctx, &b, "parameters", c.Parameters)
	appendSlice(ctx, &b, "tags", c.Tags)
	appendObject(ctx, &b, "externalDocs", c.ExternalDocs)
	appendObject(ctx, &b, "bindings", c.Bindings)
	b.ext(c.Extensions)
	return b.node()
}

func (c *Channel) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &c.Extensions, map[string]fieldDecoder{
		"address":      expectStringPtr(&c.Address),
		"messages":     expectMap[ReferencedMessage](&c.Messages),
		"title":        expectStringPtr(&c.Title),
		"summary":      expectStringPtr(&c.Summary),
		"description":  expectStringPtr(&c.Description),
		"servers":      expectSlice[ReferencedServer](&c.Servers),
		"parameters":   expectMap[ReferencedParameter](&c.Parameters),
		"tags":         expectSlice[ReferencedTag](&c.Tags),
		"externalDocs": expectObject[ReferencedExternalDocumentation](&c.ExternalDocs),
		"bindings":     expectObject[ReferencedChannelBindings](&c.Bindings),
	})
}

// Validate will validate the Channel object against the AsyncAPI Specification.
func (c *Channel) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	for name, msg := range c.Messages.All() {
		if msg == nil {
			errs = append(errs, validation.NewError("channel.messages.%s must not be null", name))
			continue
		}
		errs = append(errs, msg.Validate(ctx, opts...)...)
	}

	for _, srv := range c.Servers {
		errs = append(errs, srv.Validate(ctx, opts...)...)
	}

	for name, param := range c.Parameters.All() {
		if param == nil {
			errs = append(errs, validation.NewError("channel.parameters.%s must not be null", name))
			continue
		}
		errs = append(errs, param.Validate(ctx, opts...)...)
	}

	for _, tag := range c.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if c.ExternalDocs != nil {
		errs = append(errs, c.ExternalDocs.Validate(ctx, opts...)...)
	}

	if c.Bindings != nil {
		errs = append(errs, c.Bindings.Validate(ctx, opts...)...)
	}

	errs = append(errs, c.Extensions.Validate()...)

	return errs
}

// Parameter describes a parameter included in a channel address.
type Parameter struct {
	// Enum is an enumeration of string values to be used if the substitution options are from a limited set.
	Enum []string
	// Default is the default value to use for substitution.
	Default *string
	// Description is an optional description for the parameter.
	Description *string
	// Examples is an array of examples of the parameter value.
	Examples []string
	// Location is a runtime expression that specifies the location of the parameter value.
	Location *string

	// Extensions provides a list of extensions to the Parameter object.
	Extensions *extensions.Extensions
}

var _ model = (*Parameter)(nil)

func (p *Parameter) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.strSlice("enum", p.Enum)
	b.strPtr("default", p.Default)
	b.strPtr("description", p.Description)
	b.strSlice("examples", p.Examples)
	b.strPtr("location", p.Location)
	b.ext(p.Extensions)
	return b.node()
}

func (p *Parameter) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &p.Extensions, map[string]fieldDecoder{
		"enum":        expectStringSlice(&p.Enum),
		"default":     expectStringPtr(&p.Default),
		"description": expectStringPtr(&p.Description),
		"examples":    expectStringSlice(&p.Examples),
		"location":    expectStringPtr(&p.Location),
	})
}

// Validate will validate the Parameter object against the AsyncAPI Specification.
func (p *Parameter) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if p.Default != nil && len(p.Enum) > 0 {
		found := false
		for _, v := range p.Enum {
			if v == *p.Default {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, validation.NewError("parameter.default %q must be one of the enum values", *p.Default))
		}
	}

	errs = append(errs, p.Extensions.Validate()...)

	return errs
}
