// Package asyncapi provides a typed model of AsyncAPI 3.0 documents along with
// validation, YAML/JSON serialization, registry consistency helpers and a
// builder for assembling documents programmatically.
package asyncapi

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/json"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

const (
	// Version is the AsyncAPI Specification version this package models.
	Version = "3.0.0"
	// VersionMajor is the major version of the AsyncAPI Specification this package models.
	VersionMajor = 3
	// VersionMinor is the minor version of the AsyncAPI Specification this package models.
	VersionMinor = 0
)

// AsyncAPI is the root object of an AsyncAPI document.
type AsyncAPI struct {
	// Asyncapi is the version of the AsyncAPI Specification the document conforms to.
	Asyncapi string
	// ID is an optional unique identifier of the application, in URI format.
	ID *string
	// Info provides metadata about the API.
	Info Info
	// Servers provides connection details of servers the application connects to.
	Servers *sequencedmap.Map[string, *ReferencedServer]
	// DefaultContentType is the content type to use when encoding/decoding a message's payload if none is specified.
	DefaultContentType *string
	// Channels holds the channels the application communicates over.
	Channels *sequencedmap.Map[string, *ReferencedChannel]
	// Operations holds the operations the application performs.
	Operations *sequencedmap.Map[string, *ReferencedOperation]
	// Components holds reusable objects for different aspects of the document.
	Components *Components

	// Extensions provides a list of extensions to the AsyncAPI document.
	Extensions *extensions.Extensions
}

var _ model = (*AsyncAPI)(nil)

func (a *AsyncAPI) toNode(ctx context.Context) *yaml.Node {
	b := mapBuilder{}
	b.str("asyncapi", a.Asyncapi)
	b.strPtr("id", a.ID)
	appendObject(ctx, &b, "info", &a.Info)
	appendMap(ctx, &b, "servers", a.Servers)
	b.strPtr("defaultContentType", a.DefaultContentType)
	appendMap(ctx, &b, "channels", a.Channels)
	appendMap(ctx, &b, "operations", a.Operations)
	appendObject(ctx, &b, "components", a.Components)
	b.ext(a.Extensions)
	return b.node()
}

func (a *AsyncAPI) fromNode(node *yaml.Node) []error {
	return decodeObject(node, &a.Extensions, map[string]fieldDecoder{
		"asyncapi":           expectString(&a.Asyncapi),
		"id":                 expectStringPtr(&a.ID),
		"info":               expectInlineObject(&a.Info),
		"servers":            expectMap[ReferencedServer](&a.Servers),
		"defaultContentType": expectStringPtr(&a.DefaultContentType),
		"channels":           expectMap[ReferencedChannel](&a.Channels),
		"operations":         expectMap[ReferencedOperation](&a.Operations),
		"components":         expectObject[Components](&a.Components),
	})
}

// Validate will validate the AsyncAPI document against the AsyncAPI Specification.
func (a *AsyncAPI) Validate(ctx context.Context, opts ...validation.Option) []error {
	opts = append(opts, validation.WithContextObject(a))

	errs := []error{}

	if a.Asyncapi == "" {
		errs = append(errs, validation.NewError("asyncapi is required"))
	} else {
		major, minor, _, err := parseVersion(a.Asyncapi)
		if err != nil {
			errs = append(errs, validation.NewError("asyncapi version %q is not a valid semantic version", a.Asyncapi))
		} else if major != VersionMajor || minor != VersionMinor {
			errs = append(errs, validation.NewError("only AsyncAPI version %s is supported", Version))
		}
	}

	if a.ID != nil {
		if err := validateURL(*a.ID); err != nil {
			errs = append(errs, validation.NewError("id must be a valid URI: %s", err.Error()))
		}
	}

	errs = append(errs, a.Info.Validate(ctx, opts...)...)

	for name, srv := range a.Servers.All() {
		if err := validateName(name, "server name"); err != nil {
			errs = append(errs, err)
		}
		if srv == nil {
			errs = append(errs, validation.NewError("servers.%s must not be null", name))
			continue
		}
		errs = append(errs, srv.Validate(ctx, opts...)...)
	}

	for name, ch := range a.Channels.All() {
		if err := validateName(name, "channel name"); err != nil {
			errs = append(errs, err)
		}
		if ch == nil {
			errs = append(errs, validation.NewError("channels.%s must not be null", name))
			continue
		}
		errs = append(errs, ch.Validate(ctx, opts...)...)
	}

	for name, op := range a.Operations.All() {
		if err := validateName(name, "operation name"); err != nil {
			errs = append(errs, err)
		}
		if op == nil {
			errs = append(errs, validation.NewError("operations.%s must not be null", name))
			continue
		}
		errs = append(errs, op.Validate(ctx, opts...)...)
	}

	if a.Components != nil {
		errs = append(errs, a.Components.Validate(ctx, opts...)...)
	}

	errs = append(errs, a.validateReferences()...)

	errs = append(errs, a.Extensions.Validate()...)

	return errs
}

// ensureComponents initializes the components registry on first use.
func (a *AsyncAPI) ensureComponents() *Components {
	if a.Components == nil {
		a.Components = &Components{}
	}
	return a.Components
}

// Unmarshal reads an AsyncAPI document from the provided reader. Both YAML and
// JSON input are supported. Validation errors are returned separately from
// errors that prevented the document from being read at all.
func Unmarshal(ctx context.Context, r io.Reader) (*AsyncAPI, []error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &AsyncAPI{}
	if errs := doc.fromNode(yml.ResolveAlias(&root)); len(errs) > 0 {
		return doc, errs, nil
	}

	return doc, doc.Validate(ctx), nil
}

// Marshal writes the AsyncAPI document to the provided writer. The output
// format and indentation are controlled by the yml.Config stored in the
// context, defaulting to YAML.
func Marshal(ctx context.Context, doc *AsyncAPI, w io.Writer) error {
	if doc == nil {
		return fmt.Errorf("nil document: %w", ErrNilValue)
	}

	cfg := yml.GetConfigFromContext(ctx)
	node := doc.toNode(ctx)

	if cfg.OutputFormat == yml.OutputFormatJSON {
		return json.YAMLToJSON(node, cfg.Indentation, w, jsonOpts(cfg)...)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(cfg.Indentation)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func jsonOpts(cfg *yml.Config) []json.Option {
	if cfg.EnsureASCII {
		return []json.Option{json.WithEnsureASCII()}
	}
	return nil
}
