package asyncapi

import "github.com/speakeasy-api/asyncapi/errors"

// Sentinel errors returned by the builder and the promotion passes. They are
// wrapped with entity kind and name context and can be matched with errors.Is.
const (
	// ErrInvalidName indicates a supplied name failed the patterned key format.
	ErrInvalidName = errors.Error("name does not match the patterned key format")
	// ErrMissingField indicates an entity was created without its required fields.
	ErrMissingField = errors.Error("missing required field")
	// ErrNotFound indicates a referenced entity is not present in its registry.
	ErrNotFound = errors.Error("entity does not exist")
	// ErrStoredAsReference indicates an update targeted a registry slot that
	// holds a reference rather than an inline object.
	ErrStoredAsReference = errors.Error("entity is stored as a reference")
	// ErrInvalidEnumValue indicates a field restricted to a fixed set of
	// values received an out-of-set value.
	ErrInvalidEnumValue = errors.Error("value is not one of the allowed values")
	// ErrNotPresent indicates a removal targeted a reference that is not present.
	ErrNotPresent = errors.Error("reference is not present")
	// ErrConflict indicates an entity name is already taken by different content.
	ErrConflict = errors.Error("name conflict with different content")
	// ErrNilValue indicates a required object was nil.
	ErrNilValue = errors.Error("value must not be nil")
)
