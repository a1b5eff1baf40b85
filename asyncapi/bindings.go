package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// bindings is a protocol-name keyed map of protocol-specific definitions. The
// per-protocol payloads are carried as-is without interpretation.
type bindings struct {
	// Protocols maps a protocol name to its binding definition.
	Protocols *sequencedmap.Map[string, *yaml.Node]

	// Extensions provides a list of extensions to the bindings object.
	Extensions *extensions.Extensions
}

func (b *bindings) toNode(_ context.Context) *yaml.Node {
	mb := mapBuilder{}
	for name, payload := range b.Protocols.All() {
		mb.add(name, payload)
	}
	mb.ext(b.Extensions)
	return mb.node()
}

func (b *bindings) fromNode(node *yaml.Node) []error {
	node = yml.ResolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return []error{validation.NewNodeError(node, "expected a mapping of protocol bindings")}
	}

	b.Protocols = sequencedmap.New[string, *yaml.Node]()
	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i].Value
		value := yml.ResolveAlias(node.Content[i+1])

		if extensions.MatchesKeyPattern(key) {
			if b.Extensions == nil {
				b.Extensions = extensions.New()
			}
			b.Extensions.Set(key, value)
			continue
		}

		b.Protocols.Set(key, value)
	}

	return nil
}

// Validate will validate the bindings object against the AsyncAPI Specification.
func (b *bindings) Validate(_ context.Context, _ ...validation.Option) []error {
	return b.Extensions.Validate()
}

// Get returns the binding payload for the given protocol name.
func (b *bindings) Get(protocol string) *yaml.Node {
	if b == nil {
		return nil
	}
	return b.Protocols.GetOrZero(protocol)
}

// Set stores the binding payload for the given protocol name.
func (b *bindings) Set(protocol string, payload *yaml.Node) {
	if b.Protocols == nil {
		b.Protocols = sequencedmap.New[string, *yaml.Node]()
	}
	b.Protocols.Set(protocol, payload)
}

// ServerBindings holds protocol-specific definitions for a server.
type ServerBindings struct {
	bindings
}

// ChannelBindings holds protocol-specific definitions for a channel.
type ChannelBindings struct {
	bindings
}

// OperationBindings holds protocol-specific definitions for an operation.
type OperationBindings struct {
	bindings
}

// MessageBindings holds protocol-specific definitions for a message.
type MessageBindings struct {
	bindings
}

var (
	_ model = (*ServerBindings)(nil)
	_ model = (*ChannelBindings)(nil)
	_ model = (*OperationBindings)(nil)
	_ model = (*MessageBindings)(nil)
)
