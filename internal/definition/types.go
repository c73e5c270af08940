// Package definition validates, normalizes and resolves the media type of the
// machine-readable definitions (OpenAPI, GraphQL SDL, WSDL) attached to
// endpoint registry entries.
package definition

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies the format of an endpoint definition document
type Type string

const (
	// TypeOAS is an OpenAPI (or Swagger) document in JSON or YAML
	TypeOAS Type = "OAS"
	// TypeGraphQLSDL is a GraphQL schema definition language document
	TypeGraphQLSDL Type = "GQL_SDL"
	// TypeWSDL1 is a WSDL 1.1 document
	TypeWSDL1 Type = "WSDL1"
	// TypeWSDL2 is a WSDL 2.0 document
	TypeWSDL2 Type = "WSDL2"
)

// Types lists every supported definition type
var Types = []Type{TypeOAS, TypeGraphQLSDL, TypeWSDL1, TypeWSDL2}

// MediaType is the content type a stored definition is served with
type MediaType string

const (
	// MediaTypeJSON is used for OAS and GraphQL SDL definitions
	MediaTypeJSON MediaType = "application/json"
	// MediaTypeXML is used for WSDL definitions
	MediaTypeXML MediaType = "text/xml"
	// MediaTypeUnspecified is returned for unknown definition types
	MediaTypeUnspecified MediaType = ""
)

var (
	// ErrInvalidDefinition is returned when a definition fails the structural check for its type
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrUnsupportedType is returned for a definition type outside Types
	ErrUnsupportedType = errors.New("unsupported definition type")
	// ErrFetch is returned when a definition URL cannot be retrieved
	ErrFetch = errors.New("failed to fetch definition")
	// ErrTransform is returned when an accepted definition cannot be normalized
	ErrTransform = errors.New("failed to normalize definition")
)

// ParseType parses a definition type name, ignoring case
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
	return t, nil
}

// IsValid reports whether t is one of the supported definition types
func (t Type) IsValid() bool {
	switch t {
	case TypeOAS, TypeGraphQLSDL, TypeWSDL1, TypeWSDL2:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// Source is the place a definition is read from. At most one of Content and
// URL is set; a zero Source means no definition was supplied.
type Source struct {
	Content []byte
	URL     string
}

// IsEmpty reports whether no definition was supplied
func (s Source) IsEmpty() bool {
	return s.Content == nil && s.URL == ""
}

// IsInline reports whether the definition was supplied as bytes
func (s Source) IsInline() bool {
	return s.Content != nil
}

// FetchError reports a failure to retrieve a definition from its URL.
// It is distinct from ErrInvalidDefinition: the content was never inspected.
type FetchError struct {
	URL string
	Err error
}

// Error implements error
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s from %s: %v", ErrFetch.Error(), e.URL, e.Err)
}

// Unwrap returns the underlying transport or HTTP error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetch) match any FetchError
func (*FetchError) Is(target error) bool {
	return target == ErrFetch
}
