package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Server represents a messaging broker or server that the application connects to.
type Server struct {
	// Host is the server host name. It MAY include the port.
	Host string
	// Protocol is the protocol this server supports for connection.
	Protocol string
	// ProtocolVersion is the version of the protocol used for connection.
	ProtocolVersion *string
	// Pathname is the path to a resource in the host.
	Pathname *string
	// Description is an optional string describing the server.
	Description *string
	// Title is a human-friendly title for the server.
	Title *string
	// Summary is a short summary of the server.
	Summary *string
	// Variables is a map between a variable name and its value used for substitution in the server's host and pathname templates.
	Variables *sequencedmap.Map[string, *ReferencedServerVariable]
	// Security is a declaration of which security schemes can be used with this server.
	Security []*ReferencedSecurityScheme
	// Tags is a list of tags for logical grouping and categorization of servers.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation for this server.
	ExternalDocs *ReferencedExternalDocumentation
	// Bindings is a map where the keys describe the name of the protocol and the values describe protocol-specific definitions for the server.
	Bindings *ReferencedServerBindings

	// Extensions provides a list of extensions to the Server object.
	Extensions *extensions.Extensions
}

var _ model = (*Server)(nil)

func (s *Server) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("host", s.Host)
	b.str("protocol", s.Protocol)
	b.strPtr("protocolVersion", s.ProtocolVersion)
	b.strPtr("pathname", s.Pathname)
	b.strPtr("description", s.Description)
	b.strPtr("title", s.Title)
	b.strPtr("summary", s.Summary)
	appendMap(ctx, &b, "variables", s.Variables)
	appendSlice(ctx, &b, "security", s.Security)
	appendSlice(ctx, &b, "tags", s.Tags)
	appendObject(ctx, &b, "externalDocs", s.ExternalDocs)
	appendObject(ctx, &b, "bindings", s.Bindings)
	b.ext(s.Extensions)
	return b.node()
}

func (s *Server) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &s.Extensions, map[string]fieldDecoder{
		"host":            expectString(&s.Host),
		"protocol":        expectString(&s.Protocol),
		"protocolVersion": expectStringPtr(&s.ProtocolVersion),
		"pathname":        expectStringPtr(&s.Pathname),
		"description":     expectStringPtr(&s.Description),
		"title":           expectStringPtr(&s.Title),
		"summary":         expectStringPtr(&s.Summary),
		"variables":       expectMap[ReferencedServerVariable](&s.Variables),
		"security":        expectSlice[ReferencedSecurityScheme](&s.Security),
		"tags":            expectSlice[ReferencedTag](&s.Tags),
		"externalDocs":    expectObject[ReferencedExternalDocumentation](&s.ExternalDocs),
		"bindings":        expectObject[ReferencedServerBindings](&s.Bindings),
	})
}

// Validate will validate the Server object against the AsyncAPI Specification.
func (s *Server) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	if s.Host == "" {
		errs = append(errs, validation.NewError("server.host is required"))
	}

	if s.Protocol == "" {
		errs = append(errs, validation.NewError("server.protocol is required"))
	}

	for name, variable := range s.Variables.All() {
		if variable == nil {
			errs = append(errs, validation.NewError("server.variables.%s must not be null", name))
			continue
		}
		errs = append(errs, variable.Validate(ctx, opts...)...)
	}

	for _, scheme := range s.Security {
		errs = append(errs, scheme.Validate(ctx, opts...)...)
	}

	for _, tag := range s.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if s.ExternalDocs != nil {
		errs = append(errs, s.ExternalDocs.Validate(ctx, opts...)...)
	}

	if s.Bindings != nil {
		errs = append(errs, s.Bindings.Validate(ctx, opts...)...)
	}

	errs = append(errs, s.Extensions.Validate()...)

	return errs
}

// ServerVariable represents a variable for server host name template substitution.
type ServerVariable struct {
	// Enum is an enumeration of string values to be used if the substitution options are from a limited set.
	Enum []string
	// Default is the default value to use for substitution.
	Default *string
	// Description is an optional description for the server variable.
	Description *string
	// Examples is an array of examples of the server variable.
	Examples []string

	// Extensions provides a list of extensions to the ServerVariable object.
	Extensions *extensions.Extensions
}

var _ model = (*ServerVariable)(nil)

func (s *ServerVariable) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.strSlice("enum", s.Enum)
	b.strPtr("default", s.Default)
	b.strPtr("description", s.Description)
	b.strSlice("examples", s.Examples)
	b.ext(s.Extensions)
	return b.node()
}

func (s *ServerVariable) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &s.Extensions, map[string]fieldDecoder{
		"enum":        expectStringSlice(&s.Enum),
		"default":     expectStringPtr(&s.Default),
		"description": expectStringPtr(&s.Description),
		"examples":    expectStringSlice(&s.Examples),
	})
}

// Validate will validate the ServerVariable object against the AsyncAPI Specification.
func (s *ServerVariable) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if s.Default != nil && len(s.Enum) > 0 {
		found := false
		for _, v := range s.Enum {
			if v == *s.Default {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, validation.NewError("serverVariable.default %q must be one of the enum values", *s.Default))
		}
	}

	errs = append(errs, s.Extensions.Validate()...)

	return errs
}
