package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// mapBuilder accumulates the key/value content of a mapping node in insertion
// order. Absent values are skipped so that null placeholders are never emitted.
type mapBuilder struct {
	content []*yaml.Node
}

func (b *mapBuilder) add(key string, value *yaml.Node) {
	if value == nil {
		return
	}

	b.content = append(b.content, yml.CreateStringNode(key), value)
}

func (b *mapBuilder) str(key, value string) {
	b.add(key, yml.CreateStringNode(value))
}

func (b *mapBuilder) strPtr(key string, value *string) {
	if value == nil {
		return
	}
	b.str(key, *value)
}

func (b *mapBuilder) strSlice(key string, values []string) {
	if values == nil {
		return
	}

	elements := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		elements = append(elements, yml.CreateStringNode(v))
	}
	b.add(key, yml.CreateSequenceNode(elements))
}

func (b *mapBuilder) nodeSlice(key string, values []*yaml.Node) {
	if values == nil {
		return
	}
	b.add(key, yml.CreateSequenceNode(values))
}

func (b *mapBuilder) nodeMap(key string, m *sequencedmap.Map[string, *yaml.Node]) {
	if m == nil {
		return
	}

	content := make([]*yaml.Node, 0, m.Len()*2)
	for name, value := range m.All() {
		content = append(content, yml.CreateStringNode(name), value)
	}
	b.add(key, yml.CreateMapNode(content))
}

// ext appends the extension fields verbatim at the end of the mapping.
func (b *mapBuilder) ext(e *extensions.Extensions) {
	if e == nil {
		return
	}

	for key, value := range e.All() {
		b.add(key, value)
	}
}

func (b *mapBuilder) node() *yaml.Node {
	return yml.CreateMapNode(b.content)
}

func appendObject[T any, V modelPtr[T]](ctx context.Context, b *mapBuilder, key string, v *T) {
	if v == nil {
		return
	}
	b.add(key, V(v).toNode(ctx))
}

func appendSlice[T any, V modelPtr[T]](ctx context.Context, b *mapBuilder, key string, values []*T) {
	if values == nil {
		return
	}

	elements := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		elements = append(elements, V(v).toNode(ctx))
	}
	b.add(key, yml.CreateSequenceNode(elements))
}

func appendMap[T any, V modelPtr[T]](ctx context.Context, b *mapBuilder, key string, m *sequencedmap.Map[string, *T]) {
	if m == nil {
		return
	}

	content := make([]*yaml.Node, 0, m.Len()*2)
	for name, v := range m.All() {
		if v == nil {
			continue
		}
		content = append(content, yml.CreateStringNode(name), V(v).toNode(ctx))
	}
	b.add(key, yml.CreateMapNode(content))
}
