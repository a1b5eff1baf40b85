// Package extensions provides the ordered bag of specification extensions
// (x- prefixed fields) carried by every extensible AsyncAPI object.
package extensions

import (
	"regexp"

	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Extension represents a single extension to an object, in its raw form.
type Extension = *yaml.Node

// Element represents a key/value pair of a set of extensions.
type Element = sequencedmap.Element[string, Extension]

// NewElem will create a new element for an extensions set.
func NewElem(key string, value *yaml.Node) *Element {
	return sequencedmap.NewElem(key, value)
}

// Extensions represents a set of extensions to an object. Values are carried
// verbatim through validation and serialization.
type Extensions struct {
	*sequencedmap.Map[string, Extension]
}

// New will create a new extensions set.
func New(elements ...*Element) *Extensions {
	return &Extensions{
		Map: sequencedmap.New(elements...),
	}
}

var keyPattern = regexp.MustCompile(`^x-[\w\d.\-_]+$`)

// MatchesKeyPattern reports whether the provided key is a legal specification
// extension key.
func MatchesKeyPattern(key string) bool {
	return keyPattern.MatchString(key)
}

// Validate checks that every key in the set matches the specification
// extension pattern.
func (e *Extensions) Validate() []error {
	if e == nil || e.Map == nil {
		return nil
	}

	errs := []error{}

	for key, value := range e.All() {
		if !MatchesKeyPattern(key) {
			errs = append(errs, validation.NewNodeError(value,
				"field %q does not match specification extension pattern %s", key, keyPattern.String()))
		}
	}

	return errs
}

// IsEqual compares two extension sets for equality by rendered value.
func (e *Extensions) IsEqual(other *Extensions) bool {
	if e.Len() != other.Len() {
		return false
	}
	if e.Len() == 0 {
		return true
	}

	return e.Map.IsEqualFunc(other.Map, func(a, b Extension) bool {
		aOut, aErr := yaml.Marshal(a)
		bOut, bErr := yaml.Marshal(b)
		return aErr == nil && bErr == nil && string(aOut) == string(bOut)
	})
}

// Len returns the number of extensions in the set. nil safe.
func (e *Extensions) Len() int {
	if e == nil {
		return 0
	}
	return e.Map.Len()
}
