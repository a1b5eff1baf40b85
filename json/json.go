// Package json provides utilities for rendering yaml nodes as JSON.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Option configures the behavior of YAMLToJSON.
type Option func(o *options)

type options struct {
	ensureASCII bool
}

// WithEnsureASCII escapes all non-ASCII characters in the output as \uXXXX sequences.
func WithEnsureASCII() Option {
	return func(o *options) {
		o.ensureASCII = true
	}
}

// YAMLToJSON will convert the provided YAML node to JSON in a stable way, not reordering keys.
func YAMLToJSON(node *yaml.Node, indentation int, buffer io.Writer, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	v, err := handleYAMLNode(node)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	e := json.NewEncoder(&out)
	e.SetEscapeHTML(false)
	if indentation > 0 {
		e.SetIndent("", strings.Repeat(" ", indentation))
	}

	if err := e.Encode(v); err != nil {
		return err
	}

	data := out.Bytes()
	if o.ensureASCII {
		data = escapeNonASCII(data)
	}

	_, err = buffer.Write(data)
	return err
}

func handleYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		return handleYAMLNode(node.Content[0])
	case yaml.SequenceNode:
		return handleSequenceNode(node)
	case yaml.MappingNode:
		return handleMappingNode(node)
	case yaml.ScalarNode:
		return handleScalarNode(node)
	case yaml.AliasNode:
		return handleYAMLNode(node.Alias)
	default:
		return nil, fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func handleMappingNode(node *yaml.Node) (any, error) {
	v := sequencedmap.New[string, any]()
	for i := 1; i < len(node.Content); i += 2 {
		keyNode := node.Content[i-1]

		kv, err := handleYAMLNode(keyNode)
		if err != nil {
			return nil, err
		}

		key, ok := kv.(string)
		if !ok {
			keyData, err := json.Marshal(kv)
			if err != nil {
				return nil, err
			}
			key = string(keyData)
		}

		vv, err := handleYAMLNode(node.Content[i])
		if err != nil {
			return nil, err
		}

		v.Set(key, vv)
	}

	return orderedValue{v}, nil
}

func handleSequenceNode(node *yaml.Node) (any, error) {
	v := make([]any, len(node.Content))
	for i, n := range node.Content {
		vv, err := handleYAMLNode(n)
		if err != nil {
			return nil, err
		}

		v[i] = vv
	}

	return v, nil
}

func handleScalarNode(node *yaml.Node) (any, error) {
	var v any

	if err := node.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// orderedValue adapts a sequenced map to json.Marshaler, emitting keys in
// insertion order.
type orderedValue struct {
	m *sequencedmap.Map[string, any]
}

func (v orderedValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for key, value := range v.m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyData)
		buf.WriteByte(':')

		valueData, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(valueData)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// escapeNonASCII rewrites every rune above 0x7F as a \uXXXX escape. Such runes
// only ever appear inside JSON strings, so a whole-buffer rewrite is safe.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	for _, r := range string(data) {
		if r < 0x80 {
			out.WriteRune(r)
			continue
		}

		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
		} else {
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}
	return out.Bytes()
}
