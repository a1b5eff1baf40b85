package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// Info provides metadata about the API. The metadata can be used by the
// clients if needed.
type Info struct {
	// Title is the title of the application.
	Title string
	// Version provides the version of the application API (not to be confused with the specification version).
	Version string
	// Description is a short description of the application. CommonMark syntax can be used for rich text representation.
	Description *string
	// TermsOfService is a URL to the Terms of Service for the API. This MUST be in the form of an absolute URL.
	TermsOfService *string
	// Contact is the contact information for the exposed API.
	Contact *Contact
	// License is the license information for the exposed API.
	License *License
	// Tags is a list of tags for application API documentation control. Tags can be used for logical grouping of applications.
	Tags []*ReferencedTag
	// ExternalDocs provides additional external documentation of the exposed API.
	ExternalDocs *ReferencedExternalDocumentation

	// Extensions provides a list of extensions to the Info object.
	Extensions *extensions.Extensions
}

var _ model = (*Info)(nil)

func (i *Info) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("title", i.Title)
	b.str("version", i.Version)
	b.strPtr("description", i.Description)
	b.strPtr("termsOfService", i.TermsOfService)
	appendObject(ctx, &b, "contact", i.Contact)
	appendObject(ctx, &b, "license", i.License)
	appendSlice(ctx, &b, "tags", i.Tags)
	appendObject(ctx, &b, "externalDocs", i.ExternalDocs)
	b.ext(i.Extensions)
	return b.node()
}

func (i *Info) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &i.Extensions, map[string]fieldDecoder{
		"title":          expectString(&i.Title),
		"version":        expectString(&i.Version),
		"description":    expectStringPtr(&i.Description),
		"termsOfService": expectStringPtr(&i.TermsOfService),
		"contact":        expectObject[Contact](&i.Contact),
		"license":        expectObject[License](&i.License),
		"tags":           expectSlice[ReferencedTag](&i.Tags),
		"externalDocs":   expectObject[ReferencedExternalDocumentation](&i.ExternalDocs),
	})
}

// Validate will validate the Info object against the AsyncAPI Specification.
func (i *Info) Validate(ctx context.Context, opts ...validation.Option) []error {
	errs := []error{}

	if i.Title == "" {
		errs = append(errs, validation.NewError("info.title is required"))
	}

	if i.Version == "" {
		errs = append(errs, validation.NewError("info.version is required"))
	}

	if i.TermsOfService != nil {
		if err := validateURL(*i.TermsOfService); err != nil {
			errs = append(errs, validation.NewError("info.termsOfService must be a valid URL: %s", err.Error()))
		}
	}

	if i.Contact != nil {
		errs = append(errs, i.Contact.Validate(ctx, opts...)...)
	}

	if i.License != nil {
		errs = append(errs, i.License.Validate(ctx, opts...)...)
	}

	for _, tag := range i.Tags {
		errs = append(errs, tag.Validate(ctx, opts...)...)
	}

	if i.ExternalDocs != nil {
		errs = append(errs, i.ExternalDocs.Validate(ctx, opts...)...)
	}

	errs = append(errs, i.Extensions.Validate()...)

	return errs
}

// Contact holds contact information for the exposed API.
type Contact struct {
	// Name is the identifying name of the contact person/organization.
	Name *string
	// URL points at the contact information. MUST be in the form of an absolute URL.
	URL *string
	// Email is the email address of the contact person/organization.
	Email *string

	// Extensions provides a list of extensions to the Contact object.
	Extensions *extensions.Extensions
}

var _ model = (*Contact)(nil)

func (c *Contact) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.strPtr("name", c.Name)
	b.strPtr("url", c.URL)
	b.strPtr("email", c.Email)
	b.ext(c.Extensions)
	return b.node()
}

func (c *Contact) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &c.Extensions, map[string]fieldDecoder{
		"name":  expectStringPtr(&c.Name),
		"url":   expectStringPtr(&c.URL),
		"email": expectStringPtr(&c.Email),
	})
}

// Validate will validate the Contact object against the AsyncAPI Specification.
func (c *Contact) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if c.URL != nil {
		if err := validateURL(*c.URL); err != nil {
			errs = append(errs, validation.NewError("contact.url must be a valid URL: %s", err.Error()))
		}
	}

	if c.Email != nil {
		if err := validateEmail(*c.Email); err != nil {
			errs = append(errs, validation.NewError("contact.email must be a valid email address: %s", err.Error()))
		}
	}

	errs = append(errs, c.Extensions.Validate()...)

	return errs
}

// License holds license information for the exposed API.
type License struct {
	// Name is the license name used for the API.
	Name string
	// URL points at the license used for the API. MUST be in the form of an absolute URL.
	URL *string

	// Extensions provides a list of extensions to the License object.
	Extensions *extensions.Extensions
}

var _ model = (*License)(nil)

func (l *License) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("name", l.Name)
	b.strPtr("url", l.URL)
	b.ext(l.Extensions)
	return b.node()
}

func (l *License) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &l.Extensions, map[string]fieldDecoder{
		"name": expectString(&l.Name),
		"url":  expectStringPtr(&l.URL),
	})
}

// Validate will validate the License object against the AsyncAPI Specification.
func (l *License) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if l.Name == "" {
		errs = append(errs, validation.NewError("license.name is required"))
	}

	if l.URL != nil {
		if err := validateURL(*l.URL); err != nil {
			errs = append(errs, validation.NewError("license.url must be a valid URL: %s", err.Error()))
		}
	}

	errs = append(errs, l.Extensions.Validate()...)

	return errs
}
