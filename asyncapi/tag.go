package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Tag allows adding metadata to a single tag. Two tags share an identity if
// and only if their names are equal.
type Tag struct {
	// Name is the name of the tag.
	Name string
	// Description is a short description for the tag. CommonMark syntax can be used for rich text representation.
	Description *string
	// ExternalDocs provides additional external documentation for this tag.
	ExternalDocs *ReferencedExternalDocumentation

	// Extensions provides a list of extensions to the Tag object.
	Extensions *extensions.Extensions
}

var _ model = (*Tag)(nil)

// GetName returns the value of the Name field. Returns empty string if not set.
func (t *Tag) GetName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (t *Tag) GetDescription() string {
	if t == nil || t.Description == nil {
		return ""
	}
	return *t.Description
}

func (t *Tag) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("name", t.Name)
	b.strPtr("description", t.Description)
	appendObject(ctx, &b, "externalDocs", t.ExternalDocs)
	b.ext(t.Extensions)
	return b.node()
}

func (t *Tag) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &t.Extensions, map[string]fieldDecoder{
		"name":         expectString(&t.Name),
		"description":  expectStringPtr(&t.Description),
		"externalDocs": expectObject[ReferencedExternalDocumentation](&t.ExternalDocs),
	})
}

// Validate will validate the Tag object against the AsyncAPI Specification.
func (t *Tag) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	if t.Name == "" {
		errs = append(errs, validation.NewError("tag.name is required"))
	}

	if t.ExternalDocs != nil {
		errs = append(errs, t.ExternalDocs.Validate(ctx, opts...)...)
	}

	errs = append(errs, t.Extensions.Validate()...)

	return errs
}

// ExternalDocumentation allows referencing an external resource for extended documentation.
type ExternalDocumentation struct {
	// URL is the URL for the target documentation. This MUST be in the form of an absolute URL.
	URL string
	// Description is a short description of the target documentation.
	Description *string

	// Extensions provides a list of extensions to the ExternalDocumentation object.
	Extensions *extensions.Extensions
}

var _ model = (*ExternalDocumentation)(nil)

func (e *ExternalDocumentation) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("url", e.URL)
	b.strPtr("description", e.Description)
	b.ext(e.Extensions)
	return b.node()
}

func (e *ExternalDocumentation) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &e.Extensions, map[string]fieldDecoder{
		"url":         expectString(&e.URL),
		"description": expectStringPtr(&e.Description),
	})
}

// Validate will validate the ExternalDocumentation object against the AsyncAPI Specification.
func (e *ExternalDocumentation) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if e.URL == "" {
		errs = append(errs, validation.NewError("externalDocs.url is required"))
	} else if err := validateURL(e.URL); err != nil {
		errs = append(errs, validation.NewError("externalDocs.url must be a valid URL: %s", err.Error()))
	}

	errs = append(errs, e.Extensions.Validate()...)

	return errs
}
