package json_test

import (
	"bytes"
	"testing"

	"github.com/speakeasy-api/asyncapi/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseYAML(t *testing.T, data string) *yaml.Node {
	t.Helper()

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(data), &node))
	return &node
}

func TestYAMLToJSON_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		yaml        string
		indentation int
		expected    string
	}{
		{
			name:        "keys keep document order",
			yaml:        "zebra: 1\napple: 2\nmango: 3\n",
			indentation: 0,
			expected:    `{"zebra":1,"apple":2,"mango":3}` + "\n",
		},
		{
			name:        "nested maps keep order",
			yaml:        "outer:\n  zebra: true\n  apple: false\n",
			indentation: 0,
			expected:    `{"outer":{"zebra":true,"apple":false}}` + "\n",
		},
		{
			name:        "sequences and scalars",
			yaml:        "items:\n  - 1\n  - two\n  - 3.5\n  - null\n",
			indentation: 0,
			expected:    `{"items":[1,"two",3.5,null]}` + "\n",
		},
		{
			name:        "indented output",
			yaml:        "a: 1\nb:\n  - x\n",
			indentation: 2,
			expected:    "{\n  \"a\": 1,\n  \"b\": [\n    \"x\"\n  ]\n}\n",
		},
		{
			name:        "html characters are not escaped",
			yaml:        "url: https://example.com/a?b=1&c=<2>\n",
			indentation: 0,
			expected:    `{"url":"https://example.com/a?b=1&c=<2>"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := json.YAMLToJSON(parseYAML(t, tt.yaml), tt.indentation, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestYAMLToJSON_EnsureASCII_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		yaml     string
		expected string
	}{
		{
			name:     "latin stays untouched",
			yaml:     "title: hello\n",
			expected: `{"title":"hello"}` + "\n",
		},
		{
			name:     "basic multilingual plane",
			yaml:     "title: café\n",
			expected: `{"title":"café"}` + "\n",
		},
		{
			name:     "astral plane uses surrogate pair",
			yaml:     "title: \"\U0001F680\"\n",
			expected: `{"title":"🚀"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := json.YAMLToJSON(parseYAML(t, tt.yaml), 0, &buf, json.WithEnsureASCII())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
