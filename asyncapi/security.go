package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

// SecuritySchemeType is the type of a security scheme.
type SecuritySchemeType string

const (
	SecuritySchemeTypeUserPassword          SecuritySchemeType = "userPassword"
	SecuritySchemeTypeAPIKey                SecuritySchemeType = "apiKey"
	SecuritySchemeTypeX509                  SecuritySchemeType = "X509"
	SecuritySchemeTypeSymmetricEncryption   SecuritySchemeType = "symmetricEncryption"
	SecuritySchemeTypeAsymmetricEncryption  SecuritySchemeType = "asymmetricEncryption"
	SecuritySchemeTypeHTTPAPIKey            SecuritySchemeType = "httpApiKey"
	SecuritySchemeTypeHTTP                  SecuritySchemeType = "http"
	SecuritySchemeTypeOAuth2                SecuritySchemeType = "oauth2"
	SecuritySchemeTypeOpenIDConnect         SecuritySchemeType = "openIdConnect"
	SecuritySchemeTypePlain                 SecuritySchemeType = "plain"
	SecuritySchemeTypeScramSha256           SecuritySchemeType = "scramSha256"
	SecuritySchemeTypeScramSha512           SecuritySchemeType = "scramSha512"
	SecuritySchemeTypeGssapi                SecuritySchemeType = "gssapi"
)

var securitySchemeTypes = map[SecuritySchemeType]bool{
	SecuritySchemeTypeUserPassword:         true,
	SecuritySchemeTypeAPIKey:               true,
	SecuritySchemeTypeX509:                 true,
	SecuritySchemeTypeSymmetricEncryption:  true,
	SecuritySchemeTypeAsymmetricEncryption: true,
	SecuritySchemeTypeHTTPAPIKey:           true,
	SecuritySchemeTypeHTTP:                 true,
	SecuritySchemeTypeOAuth2:               true,
	SecuritySchemeTypeOpenIDConnect:        true,
	SecuritySchemeTypePlain:                true,
	SecuritySchemeTypeScramSha256:          true,
	SecuritySchemeTypeScramSha512:          true,
	SecuritySchemeTypeGssapi:               true,
}

// SecurityScheme defines a security scheme that can be used by the operations.
type SecurityScheme struct {
	// Type is the type of the security scheme.
	Type SecuritySchemeType
	// Description is a short description for the security scheme.
	Description *string
	// Name is the name of the header, query or cookie parameter to be used. Applies to httpApiKey.
	Name *string
	// In is the location of the API key or token. Applies to apiKey and httpApiKey.
	In *string
	// Scheme is the name of the HTTP Authorization scheme to be used. Applies to http.
	Scheme *string
	// BearerFormat is a hint to the client to identify how the bearer token is formatted. Applies to http ("bearer").
	BearerFormat *string
	// Flows is an object containing configuration information for the supported OAuth flows. Applies to oauth2.
	Flows *yaml.Node
	// OpenIDConnectURL is the well-known URL to discover the OpenID Connect provider metadata. Applies to openIdConnect.
	OpenIDConnectURL *string
	// Scopes is a list of the needed scopes for the API client. Applies to oauth2 and openIdConnect.
	Scopes []string

	// Extensions provides a list of extensions to the SecurityScheme object.
	Extensions *extensions.Extensions
}

var _ model = (*SecurityScheme)(nil)

func (s *SecurityScheme) toNode(_ context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("type", string(s.Type))
	b.strPtr("description", s.Description)
	b.strPtr("name", s.Name)
	b.strPtr("in", s.In)
	b.strPtr("scheme", s.Scheme)
	b.strPtr("bearerFormat", s.BearerFormat)
	b.add("flows", s.Flows)
	b.strPtr("openIdConnectUrl", s.OpenIDConnectURL)
	b.strSlice("scopes", s.Scopes)
	b.ext(s.Extensions)
	return b.node()
}

func (s *SecurityScheme) fromNode(node *yaml.Node) []error {
	var typ string
	errs := decodeObject(node, &s.Extensions, map[string]fieldDecoder{
		"type":             expectString(&typ),
		"description":      expectStringPtr(&s.Description),
		"name":             expectStringPtr(&s.Name),
		"in":               expectStringPtr(&s.In),
		"scheme":           expectStringPtr(&s.Scheme),
		"bearerFormat":     expectStringPtr(&s.BearerFormat),
		"flows":            expectNode(&s.Flows),
		"openIdConnectUrl": expectStringPtr(&s.OpenIDConnectURL),
		"scopes":           expectStringSlice(&s.Scopes),
	})
	s.Type = SecuritySchemeType(typ)
	return errs
}

// Validate will validate the SecurityScheme object against the AsyncAPI Specification.
func (s *SecurityScheme) Validate(_ context.Context, _ ...validation.Option) []error {
	errs := []error{}

	if s.Type == "" {
		errs = append(errs, validation.NewError("securityScheme.type is required"))
	} else if !securitySchemeTypes[s.Type] {
		errs = append(errs, validation.NewError("securityScheme.type %q is not a valid security scheme type", s.Type))
	}

	switch s.Type {
	case SecuritySchemeTypeHTTPAPIKey:
		if s.Name == nil {
			errs = append(errs, validation.NewError("securityScheme.name is required for type httpApiKey"))
		}
		if s.In == nil {
			errs = append(errs, validation.NewError("securityScheme.in is required for type httpApiKey"))
		}
	case SecuritySchemeTypeAPIKey:
		if s.In == nil {
			errs = append(errs, validation.NewError("securityScheme.in is required for type apiKey"))
		}
	case SecuritySchemeTypeHTTP:
		if s.Scheme == nil {
			errs = append(errs, validation.NewError("securityScheme.scheme is required for type http"))
		}
	case SecuritySchemeTypeOAuth2:
		if s.Flows == nil {
			errs = append(errs, validation.NewError("securityScheme.flows is required for type oauth2"))
		}
	case SecuritySchemeTypeOpenIDConnect:
		if s.OpenIDConnectURL == nil {
			errs = append(errs, validation.NewError("securityScheme.openIdConnectUrl is required for type openIdConnect"))
		} else if err := validateURL(*s.OpenIDConnectURL); err != nil {
			errs = append(errs, validation.NewError("securityScheme.openIdConnectUrl must be a valid URL: %s", err.Error()))
		}
	}

	errs = append(errs, s.Extensions.Validate()...)

	return errs
}
