package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// model is implemented by every object in the document tree. toNode renders
// the object to a yaml node using the documented wire aliases and omitting
// absent fields; fromNode decodes a yaml node into the object, returning
// validation errors positioned at the offending nodes.
type model interface {
	toNode(ctx context.Context) *yaml.Node
	fromNode(node *yaml.Node) []error
	Validate(ctx context.Context, opts ...validation.Option) []error
}

// modelPtr constrains a type parameter to a pointer to a document object.
type modelPtr[T any] interface {
	*T
	model
}
