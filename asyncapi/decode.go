package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// fieldDecoder decodes a single field value into its destination.
type fieldDecoder func(node *yaml.Node) []error

// decodeObject decodes a mapping node field by field. When ext is non-nil the
// object is extensible: unknown keys matching the specification extension
// pattern are preserved verbatim and any other unknown key is an error. When
// ext is nil the object is non-extensible and any unknown key is an error.
// Explicit null values are treated as absent fields.
func decodeObject(node *yaml.Node, ext **extensions.Extensions, fields map[string]fieldDecoder) []error {
	node = yml.ResolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return []error{validation.NewNodeError(node, "expected a mapping")}
	}

	errs := []error{}

	for i := 1; i < len(node.Content); i += 2 {
		keyNode := node.Content[i-1]
		valueNode := node.Content[i]
		key := keyNode.Value

		if decode, ok := fields[key]; ok {
			if yml.IsNull(valueNode) {
				continue
			}
			errs = append(errs, decode(valueNode)...)
			continue
		}

		if ext == nil {
			errs = append(errs, validation.NewNodeError(keyNode, "field %q is not a recognized field", key))
			continue
		}

		if !extensions.MatchesKeyPattern(key) {
			errs = append(errs, validation.NewNodeError(keyNode, "field %q is not a recognized field or a valid specification extension", key))
			continue
		}

		if *ext == nil {
			*ext = extensions.New()
		}
		(*ext).Set(key, valueNode)
	}

	return errs
}

func expectString(dst *string) fieldDecoder {
	return func(node *yaml.Node) []error {
		node = yml.ResolveAlias(node)
		if node.Kind != yaml.ScalarNode {
			return []error{validation.NewNodeError(node, "expected a string")}
		}
		*dst = node.Value
		return nil
	}
}

func expectStringPtr(dst **string) fieldDecoder {
	return func(node *yaml.Node) []error {
		var v string
		errs := expectString(&v)(node)
		if len(errs) == 0 {
			*dst = &v
		}
		return errs
	}
}

func expectStringSlice(dst *[]string) fieldDecoder {
	return func(node *yaml.Node) []error {
		node = yml.ResolveAlias(node)
		if node.Kind != yaml.SequenceNode {
			return []error{validation.NewNodeError(node, "expected a sequence of strings")}
		}

		errs := []error{}
		values := make([]string, 0, len(node.Content))
		for _, element := range node.Content {
			var v string
			if elementErrs := expectString(&v)(element); len(elementErrs) > 0 {
				errs = append(errs, elementErrs...)
				continue
			}
			values = append(values, v)
		}

		*dst = values
		return errs
	}
}

// expectNode stores the value verbatim, used for inert payloads such as
// schema content and binding definitions.
func expectNode(dst **yaml.Node) fieldDecoder {
	return func(node *yaml.Node) []error {
		*dst = node
		return nil
	}
}

func expectObject[T any, V modelPtr[T]](dst **T) fieldDecoder {
	return func(node *yaml.Node) []error {
		v := new(T)
		errs := V(v).fromNode(node)
		*dst = v
		return errs
	}
}

// expectInlineObject decodes into an already allocated value, used for
// required embedded objects such as the document info.
func expectInlineObject[T any, V modelPtr[T]](dst *T) fieldDecoder {
	return func(node *yaml.Node) []error {
		return V(dst).fromNode(node)
	}
}

func expectSlice[T any, V modelPtr[T]](dst *[]*T) fieldDecoder {
	return func(node *yaml.Node) []error {
		node = yml.ResolveAlias(node)
		if node.Kind != yaml.SequenceNode {
			return []error{validation.NewNodeError(node, "expected a sequence")}
		}

		errs := []error{}
		values := make([]*T, 0, len(node.Content))
		for _, element := range node.Content {
			v := new(T)
			errs = append(errs, V(v).fromNode(element)...)
			values = append(values, v)
		}

		*dst = values
		return errs
	}
}

func expectMap[T any, V modelPtr[T]](dst **sequencedmap.Map[string, *T]) fieldDecoder {
	return func(node *yaml.Node) []error {
		node = yml.ResolveAlias(node)
		if node.Kind != yaml.MappingNode {
			return []error{validation.NewNodeError(node, "expected a mapping")}
		}

		errs := []error{}
		m := sequencedmap.New[string, *T]()
		for i := 1; i < len(node.Content); i += 2 {
			v := new(T)
			errs = append(errs, V(v).fromNode(node.Content[i])...)
			m.Set(node.Content[i-1].Value, v)
		}

		*dst = m
		return errs
	}
}

// expectNodeMap stores a mapping of names to verbatim payloads, used for
// protocol binding containers.
func expectNodeMap(dst **sequencedmap.Map[string, *yaml.Node]) fieldDecoder {
	return func(node *yaml.Node) []error {
		node = yml.ResolveAlias(node)
		if node.Kind != yaml.MappingNode {
			return []error{validation.NewNodeError(node, "expected a mapping")}
		}

		m := sequencedmap.New[string, *yaml.Node]()
		for i := 1; i < len(node.Content); i += 2 {
			m.Set(node.Content[i-1].Value, node.Content[i])
		}

		*dst = m
		return nil
	}
}

// expectNodeSlice stores a sequence of verbatim payloads, used for examples.
func expectNodeSlice(dst *[]*yaml.Node) fieldDecoder {
	return func(node *yaml.Node) []error {
		node = yml.ResolveAlias(node)
		if node.Kind != yaml.SequenceNode {
			return []error{validation.NewNodeError(node, "expected a sequence")}
		}

		*dst = append([]*yaml.Node{}, node.Content...)
		return nil
	}
}
