// Package yml provides utilities for building and inspecting yaml nodes.
package yml

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// CreateStringNode creates a scalar string node.
func CreateStringNode(value string) *yaml.Node {
	return &yaml.Node{
		Value: value,
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
	}
}

// CreateIntNode creates a scalar integer node.
func CreateIntNode(value int64) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatInt(value, 10),
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
	}
}

// CreateFloatNode creates a scalar float node.
func CreateFloatNode(value float64) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatFloat(value, 'f', -1, 64),
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
	}
}

// CreateBoolNode creates a scalar boolean node.
func CreateBoolNode(value bool) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatBool(value),
		Kind:  yaml.ScalarNode,
		Tag:   "!!bool",
	}
}

// CreateMapNode creates a mapping node with the provided alternating key and
// value content, preserving insertion order.
func CreateMapNode(content []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
	}
}

// CreateSequenceNode creates a sequence node with the provided elements.
func CreateSequenceNode(elements []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: elements,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
	}
}

// ResolveAlias returns the node an alias node points at, or the node itself.
// nil safe.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}

	if node.Kind == yaml.AliasNode {
		return ResolveAlias(node.Alias)
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return ResolveAlias(node.Content[0])
	}

	return node
}

// IsNull reports whether the node represents an explicit yaml null. nil nodes
// are treated as null.
func IsNull(node *yaml.Node) bool {
	node = ResolveAlias(node)
	if node == nil {
		return true
	}
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// EqualNodes compares two nodes for structural equality: kind, tag, value and
// content, ignoring style and source position.
func EqualNodes(a, b *yaml.Node) bool {
	a = ResolveAlias(a)
	b = ResolveAlias(b)

	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind || a.Tag != b.Tag || a.Value != b.Value {
		return false
	}

	if len(a.Content) != len(b.Content) {
		return false
	}

	for i := range a.Content {
		if !EqualNodes(a.Content[i], b.Content[i]) {
			return false
		}
	}

	return true
}
