package definition

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.opentelemetry.io/otel/trace"
	"sigs.k8s.io/yaml"

	"github.com/stacklok/toolhive-endpoint-registry/internal/httpclient"
	"github.com/stacklok/toolhive-endpoint-registry/internal/otel"
)

const (
	oasSchemaURL = "https://stacklok.dev/schemas/endpoint-registry/oas-structure.json"

	wsdl1Namespace = "http://schemas.xmlsoap.org/wsdl/"
	wsdl1Root      = "definitions"
	wsdl2Namespace = "http://www.w3.org/ns/wsdl"
	wsdl2Root      = "description"
)

//go:embed schemas/oas-structure.json
var oasSchemaJSON []byte

// Validator performs the structural check of a definition against its
// declared type. A URL source is fetched once with the configured client.
type Validator struct {
	client    httpclient.Client
	oasSchema *jsonschema.Schema
}

// ValidatorOption configures a Validator
type ValidatorOption func(*Validator) error

// WithHTTPClient sets the client used to fetch URL sources
func WithHTTPClient(client httpclient.Client) ValidatorOption {
	return func(v *Validator) error {
		if client == nil {
			return fmt.Errorf("http client is required")
		}
		v.client = client
		return nil
	}
}

// NewValidator creates a Validator. Without WithHTTPClient a default client
// with httpclient.DefaultTimeout is used.
func NewValidator(opts ...ValidatorOption) (*Validator, error) {
	v := &Validator{}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	if v.client == nil {
		v.client = httpclient.NewDefaultClient(httpclient.DefaultTimeout)
	}

	schema, err := compileOASSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile OAS structure schema: %w", err)
	}
	v.oasSchema = schema

	return v, nil
}

func compileOASSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(oasSchemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(oasSchemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(oasSchemaURL)
}

// Validate checks the definition held by src. Inline content is validated
// directly, a URL is fetched first. An empty source is invalid.
func (v *Validator) Validate(ctx context.Context, src Source, t Type) error {
	switch {
	case src.IsInline():
		return v.ValidateContent(ctx, src.Content, t)
	case src.URL != "":
		return v.ValidateURL(ctx, src.URL, t)
	default:
		return fmt.Errorf("%w: no definition supplied", ErrInvalidDefinition)
	}
}

// ValidateURL fetches the definition at rawURL and validates its content.
// Transport failures and non-2xx responses are reported as *FetchError and
// are never retried.
func (v *Validator) ValidateURL(ctx context.Context, rawURL string, t Type) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return &FetchError{URL: rawURL, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &FetchError{URL: rawURL, Err: fmt.Errorf("unsupported URL scheme %q", u.Scheme)}
	}

	content, err := v.client.Get(ctx, u.String())
	if err != nil {
		slog.DebugContext(ctx, "Definition fetch failed", "url", rawURL, "error", err)
		return &FetchError{URL: rawURL, Err: err}
	}

	if err := v.ValidateContent(ctx, content, t); err != nil {
		return fmt.Errorf("definition at %s: %w", rawURL, err)
	}
	return nil
}

// ValidateContent checks in-memory definition bytes against the structural
// rules for t. The check is all-or-nothing.
func (v *Validator) ValidateContent(ctx context.Context, content []byte, t Type) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return fmt.Errorf("%w: %s definition is empty", ErrInvalidDefinition, t)
	}

	switch t {
	case TypeOAS:
		return v.validateOAS(ctx, content)
	case TypeGraphQLSDL:
		return validateGraphQLSDL(content)
	case TypeWSDL1:
		return validateWSDL(content, wsdl1Namespace, wsdl1Root)
	case TypeWSDL2:
		return validateWSDL(content, wsdl2Namespace, wsdl2Root)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
}

// validateOAS accepts JSON or YAML carrying an openapi or swagger marker and
// an info object. The accepted document's spec version and title are set on
// the span in ctx.
func (v *Validator) validateOAS(ctx context.Context, content []byte) error {
	doc := content
	if isJSONObject(content) {
		if !json.Valid(content) {
			return fmt.Errorf("%w: OAS definition is not valid JSON", ErrInvalidDefinition)
		}
	} else {
		converted, err := yaml.YAMLToJSON(content)
		if err != nil {
			return fmt.Errorf("%w: OAS definition is neither JSON nor YAML: %v", ErrInvalidDefinition, err)
		}
		doc = converted
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("%w: OAS definition could not be decoded: %v", ErrInvalidDefinition, err)
	}
	if err := v.oasSchema.Validate(inst); err != nil {
		return fmt.Errorf("%w: OAS definition lacks openapi/swagger markers: %v", ErrInvalidDefinition, err)
	}

	specVersion, title := describeOAS(doc)
	trace.SpanFromContext(ctx).SetAttributes(
		otel.AttrDefinitionSpecVersion.String(specVersion),
		otel.AttrDefinitionTitle.String(title),
	)
	slog.DebugContext(ctx, "OAS definition accepted", "spec_version", specVersion, "title", title)

	return nil
}

// describeOAS returns the openapi (or swagger) version and info.title of a
// JSON OAS document
func describeOAS(doc []byte) (specVersion, title string) {
	res := gjson.GetManyBytes(doc, "openapi", "swagger", "info.title")
	specVersion = res[0].String()
	if !res[0].Exists() {
		specVersion = res[1].String()
	}
	return specVersion, res[2].String()
}

// validateGraphQLSDL accepts any parseable schema document with at least one
// definition
func validateGraphQLSDL(content []byte) error {
	doc, err := parser.ParseSchema(&ast.Source{Name: "definition.graphql", Input: string(content)})
	if err != nil {
		return fmt.Errorf("%w: GraphQL SDL does not parse: %v", ErrInvalidDefinition, err)
	}

	if len(doc.Definitions)+len(doc.Extensions)+len(doc.Schema)+len(doc.SchemaExtension)+len(doc.Directives) == 0 {
		return fmt.Errorf("%w: GraphQL SDL contains no definitions", ErrInvalidDefinition)
	}
	return nil
}

// validateWSDL accepts well-formed XML whose root element matches the WSDL
// version's namespace and local name
func validateWSDL(content []byte, namespace, root string) error {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var (
		rootSeen bool
		depth    int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: WSDL is not well-formed XML: %v", ErrInvalidDefinition, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > 1 {
				continue
			}
			if rootSeen {
				return fmt.Errorf("%w: WSDL has more than one root element, found {%s}%s after {%s}%s",
					ErrInvalidDefinition, el.Name.Space, el.Name.Local, namespace, root)
			}
			rootSeen = true
			if el.Name.Space != namespace || el.Name.Local != root {
				return fmt.Errorf("%w: expected root element {%s}%s, got {%s}%s",
					ErrInvalidDefinition, namespace, root, el.Name.Space, el.Name.Local)
			}
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(el)) > 0 {
				return fmt.Errorf("%w: WSDL has text outside the root element", ErrInvalidDefinition)
			}
		}
	}

	if !rootSeen {
		return fmt.Errorf("%w: WSDL has no root element", ErrInvalidDefinition)
	}
	return nil
}
