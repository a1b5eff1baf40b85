package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

type (
	// ReferencedServer represents a server that can either be referenced from the components registry or declared inline.
	ReferencedServer = Referenced[Server, *Server]
	// ReferencedServerVariable represents a server variable that can either be referenced from the components registry or declared inline.
	ReferencedServerVariable = Referenced[ServerVariable, *ServerVariable]
	// ReferencedChannel represents a channel that can either be referenced from elsewhere in the document or declared inline.
	ReferencedChannel = Referenced[Channel, *Channel]
	// ReferencedParameter represents a channel parameter that can either be referenced from the components registry or declared inline.
	ReferencedParameter = Referenced[Parameter, *Parameter]
	// ReferencedOperation represents an operation that can either be referenced from elsewhere in the document or declared inline.
	ReferencedOperation = Referenced[Operation, *Operation]
	// ReferencedOperationTrait represents an operation trait that can either be referenced from the components registry or declared inline.
	ReferencedOperationTrait = Referenced[OperationTrait, *OperationTrait]
	// ReferencedOperationReply represents an operation reply that can either be referenced from the components registry or declared inline.
	ReferencedOperationReply = Referenced[OperationReply, *OperationReply]
	// ReferencedOperationReplyAddress represents an operation reply address that can either be referenced from the components registry or declared inline.
	ReferencedOperationReplyAddress = Referenced[OperationReplyAddress, *OperationReplyAddress]
	// ReferencedMessage represents a message that can either be referenced from the components registry or declared inline.
	ReferencedMessage = Referenced[Message, *Message]
	// ReferencedMessageTrait represents a message trait that can either be referenced from the components registry or declared inline.
	ReferencedMessageTrait = Referenced[MessageTrait, *MessageTrait]
	// ReferencedCorrelationID represents a correlation ID that can either be referenced from the components registry or declared inline.
	ReferencedCorrelationID = Referenced[CorrelationID, *CorrelationID]
	// ReferencedSecurityScheme represents a security scheme that can either be referenced from the components registry or declared inline.
	ReferencedSecurityScheme = Referenced[SecurityScheme, *SecurityScheme]
	// ReferencedSchema represents a schema that can either be referenced from the components registry or declared inline.
	ReferencedSchema = Referenced[Schema, *Schema]
	// ReferencedTag represents a tag that can either be referenced from the components registry or declared inline.
	ReferencedTag = Referenced[Tag, *Tag]
	// ReferencedExternalDocumentation represents external documentation that can either be referenced from the components registry or declared inline.
	ReferencedExternalDocumentation = Referenced[ExternalDocumentation, *ExternalDocumentation]
	// ReferencedServerBindings represents a server bindings object that can either be referenced from the components registry or declared inline.
	ReferencedServerBindings = Referenced[ServerBindings, *ServerBindings]
	// ReferencedChannelBindings represents a channel bindings object that can either be referenced from the components registry or declared inline.
	ReferencedChannelBindings = Referenced[ChannelBindings, *ChannelBindings]
	// ReferencedOperationBindings represents an operation bindings object that can either be referenced from the components registry or declared inline.
	ReferencedOperationBindings = Referenced[OperationBindings, *OperationBindings]
	// ReferencedMessageBindings represents a message bindings object that can either be referenced from the components registry or declared inline.
	ReferencedMessageBindings = Referenced[MessageBindings, *MessageBindings]
)

// Referenced is a polymorphic slot holding either an inline object or a
// reference to the canonical definition stored elsewhere in the document.
// Exactly one of Reference and Object is set.
type Referenced[T any, V modelPtr[T]] struct {
	// Reference is a pointer to the authoritative value for this slot.
	Reference *references.Reference
	// Object is the inline object when this slot does not hold a reference.
	Object *T
}

var _ model = (*Referenced[Tag, *Tag])(nil)

// NewReferenced creates a slot holding the provided inline object.
func NewReferenced[T any, V modelPtr[T]](object *T) *Referenced[T, V] {
	return &Referenced[T, V]{Object: object}
}

// NewReference creates a slot holding the provided reference.
func NewReference[T any, V modelPtr[T]](ref references.Reference) *Referenced[T, V] {
	return &Referenced[T, V]{Reference: &ref}
}

// IsReference returns true if the slot holds a reference (via $ref) as
// opposed to an inline object. nil safe.
func (r *Referenced[T, V]) IsReference() bool {
	if r == nil {
		return false
	}
	return r.Reference != nil
}

// GetObject returns the inline object, or nil if the slot holds a reference. nil safe.
func (r *Referenced[T, V]) GetObject() *T {
	if r == nil {
		return nil
	}
	return r.Object
}

// GetReference returns the reference held by the slot, or an empty reference
// for inline objects. nil safe.
func (r *Referenced[T, V]) GetReference() references.Reference {
	if r == nil || r.Reference == nil {
		return ""
	}
	return *r.Reference
}

func (r *Referenced[T, V]) toNode(ctx context.Context) *yaml.Node {
	if r.Reference != nil {
		b := mapBuilder{}
		b.str("$ref", string(*r.Reference))
		return b.node()
	}

	if r.Object == nil {
		return nil
	}

	return V(r.Object).toNode(ctx)
}

func (r *Referenced[T, V]) fromNode(node *yaml.Node) []error {
	resolved := yml.ResolveAlias(node)
	if resolved != nil && resolved.Kind == yaml.MappingNode && hasRefKey(resolved) {
		// A Reference Object holds a single $ref field and nothing else.
		var ref string
		errs := decodeObject(resolved, nil, map[string]fieldDecoder{
			"$ref": expectString(&ref),
		})
		reference := references.Reference(ref)
		r.Reference = &reference
		return errs
	}

	object := new(T)
	errs := V(object).fromNode(node)
	r.Object = object
	return errs
}

func hasRefKey(node *yaml.Node) bool {
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "$ref" {
			return true
		}
	}
	return false
}

// Validate validates the slot: the reference grammar when it holds a
// reference, otherwise the inline object.
func (r *Referenced[T, V]) Validate(ctx context.Context, opts ...validation.Option) []error {
	if r.Reference != nil {
		if err := r.Reference.Validate(); err != nil {
			return []error{validation.NewError("invalid reference: %s", err.Error())}
		}
		return nil
	}

	if r.Object == nil {
		return []error{validation.NewError("slot must hold either a reference or an inline object")}
	}

	return V(r.Object).Validate(ctx, opts...)
}
