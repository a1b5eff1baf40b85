// Package optional provides a tri-state value type for merge-update
// operations, distinguishing a field that was omitted from a field that was
// explicitly cleared.
package optional

type state int

const (
	unset state = iota
	null
	set
)

// Val carries an optional field value. The zero value is unset, meaning the
// field was not provided and the target should be left untouched. A null Val
// means the field was explicitly cleared. A set Val carries a replacement
// value.
type Val[T any] struct {
	state state
	value T
}

// Of returns a set Val carrying the provided value.
func Of[T any](v T) Val[T] {
	return Val[T]{state: set, value: v}
}

// Null returns a Val that clears the target field.
func Null[T any]() Val[T] {
	return Val[T]{state: null}
}

// IsUnset reports whether the value was omitted.
func (v Val[T]) IsUnset() bool {
	return v.state == unset
}

// IsNull reports whether the value explicitly clears the field.
func (v Val[T]) IsNull() bool {
	return v.state == null
}

// IsSet reports whether the value carries a replacement.
func (v Val[T]) IsSet() bool {
	return v.state == set
}

// Get returns the carried value and whether one is present.
func (v Val[T]) Get() (T, bool) {
	return v.value, v.state == set
}

// Apply merges the value into a pointer-typed field: a set value replaces the
// field, null clears it to nil, and unset leaves it untouched.
func Apply[T any](v Val[T], dst **T) {
	switch v.state {
	case set:
		val := v.value
		*dst = &val
	case null:
		*dst = nil
	case unset:
	}
}

// ApplyValue merges the value into a non-pointer field. Only set values are
// written; null is ignored as such fields are required and cannot be cleared.
func ApplyValue[T any](v Val[T], dst *T) {
	if v.state == set {
		*dst = v.value
	}
}
