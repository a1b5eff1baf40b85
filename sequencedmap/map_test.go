package sequencedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_PreservesInsertionOrder_Success(t *testing.T) {
	t.Parallel()

	m := New[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	var keys []string
	for key := range m.Keys() {
		keys = append(keys, key)
	}

	assert.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestSet_UpdateExistingKeepsPosition_Success(t *testing.T) {
	t.Parallel()

	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	var keys []string
	var values []int
	for key, value := range m.All() {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []int{10, 2}, values)
	assert.Equal(t, 2, m.Len())
}

func TestGet_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		key           string
		expectedValue int
		expectedOK    bool
	}{
		{name: "present key", key: "a", expectedValue: 1, expectedOK: true},
		{name: "absent key", key: "z", expectedValue: 0, expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := New(NewElem("a", 1), NewElem("b", 2))

			value, ok := m.Get(tt.key)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	m := New(NewElem("a", 1), NewElem("b", 2), NewElem("c", 3))

	require.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Has("b"))

	var keys []string
	for key := range m.Keys() {
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestMap_NilReceiver_Success(t *testing.T) {
	t.Parallel()

	var m *Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Zero(t, m.GetOrZero("a"))

	count := 0
	for range m.All() {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestIsEqualFunc_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a        *Map[string, int]
		b        *Map[string, int]
		expected bool
	}{
		{
			name:     "equal regardless of order",
			a:        New(NewElem("a", 1), NewElem("b", 2)),
			b:        New(NewElem("b", 2), NewElem("a", 1)),
			expected: true,
		},
		{
			name:     "different values",
			a:        New(NewElem("a", 1)),
			b:        New(NewElem("a", 2)),
			expected: false,
		},
		{
			name:     "different lengths",
			a:        New(NewElem("a", 1)),
			b:        New(NewElem("a", 1), NewElem("b", 2)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			actual := tt.a.IsEqualFunc(tt.b, func(a, b int) bool { return a == b })
			assert.Equal(t, tt.expected, actual)
		})
	}
}
