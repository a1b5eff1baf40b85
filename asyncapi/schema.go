package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// Schema carries a schema definition as-is. The contents are not interpreted
// beyond being well formed YAML/JSON so any schema format supported by the
// AsyncAPI Specification can be represented.
type Schema struct {
	// Node is the raw schema document.
	Node *yaml.Node
}

var _ model = (*Schema)(nil)

func (s *Schema) toNode(_ context.Context) *yaml.Node {
	if s.Node == nil {
		return yml.CreateMapNode(nil)
	}
	return yml.ResolveAlias(s.Node)
}

func (s *Schema) fromNode(node *yaml.Node) []error {
	s.Node = yml.ResolveAlias(node)
	return nil
}

// Validate checks the schema payload is present.
func (s *Schema) Validate(_ context.Context, _ ...validation.Option) []error {
	if s.Node == nil {
		return []error{validation.NewError("schema must not be empty")}
	}
	return nil
}

// IsEqual compares two schemas by their underlying document contents.
func (s *Schema) IsEqual(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}
	return yml.EqualNodes(s.Node, other.Node)
}
