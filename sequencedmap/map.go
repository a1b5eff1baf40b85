// Package sequencedmap provides a map implementation that maintains the order of keys as they are added.
package sequencedmap

import (
	"iter"
	"slices"
)

// Element is a key-value pair that is stored in a sequenced map.
type Element[K comparable, V any] struct {
	Key   K
	Value V
}

// NewElem creates a new element with the specified key and value.
func NewElem[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		Key:   key,
		Value: value,
	}
}

// Map is a map implementation that maintains the order of keys as they are added.
// Setting an existing key updates the value in place without changing its position.
type Map[K comparable, V any] struct {
	m map[K]*Element[K, V]
	l []*Element[K, V]
}

// New creates a new map with the specified elements.
func New[K comparable, V any](elements ...*Element[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		m: make(map[K]*Element[K, V], len(elements)),
		l: make([]*Element[K, V], 0, len(elements)),
	}

	for _, element := range elements {
		m.Set(element.Key, element.Value)
	}

	return m
}

// Len returns the number of elements in the map. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.l)
}

// Set sets the value for the specified key. If the key already exists its
// value is replaced and its position in the sequence is retained.
func (m *Map[K, V]) Set(key K, value V) {
	if element, ok := m.m[key]; ok {
		element.Value = value
		return
	}

	element := NewElem(key, value)
	m.m[key] = element
	m.l = append(m.l, element)
}

// Get returns the value for the specified key and a boolean indicating whether the key was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}

	element, ok := m.m[key]
	if !ok {
		return zero, false
	}

	return element.Value, true
}

// GetOrZero returns the value for the specified key or the zero value if the key is not found.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has returns a boolean indicating whether the map contains the specified key. nil safe.
func (m *Map[K, V]) Has(key K) bool {
	if m == nil {
		return false
	}

	_, ok := m.m[key]
	return ok
}

// Delete removes the specified key from the map, returning whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if m == nil {
		return false
	}

	element, ok := m.m[key]
	if !ok {
		return false
	}

	delete(m.m, key)
	m.l = slices.DeleteFunc(m.l, func(e *Element[K, V]) bool {
		return e == element
	})

	return true
}

// Keys returns an iterator over the keys of the map in insertion order. nil safe.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}
		for _, element := range m.l {
			if !yield(element.Key) {
				return
			}
		}
	}
}

// All returns an iterator over the key-value pairs of the map in insertion order. nil safe.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, element := range m.l {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}

// IsEqualFunc compares two maps for equality using the provided function to
// compare values. Order of keys is not significant.
func (m *Map[K, V]) IsEqualFunc(other *Map[K, V], equal func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	for key, value := range m.All() {
		otherValue, ok := other.Get(key)
		if !ok || !equal(value, otherValue) {
			return false
		}
	}

	return true
}
