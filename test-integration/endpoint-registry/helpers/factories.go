package helpers

import (
	"fmt"
	"time"
)

// Registry mirrors the registry representation returned by the API
type Registry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Type        string `json:"type"`
}

// Entry mirrors the entry representation returned by the API
type Entry struct {
	ID              string `json:"id"`
	RegistryID      string `json:"registryId"`
	Name            string `json:"entryName"`
	DisplayName     string `json:"displayName,omitempty"`
	Version         string `json:"version"`
	ServiceType     string `json:"serviceType,omitempty"`
	ServiceCategory string `json:"serviceCategory,omitempty"`
	ServiceURL      string `json:"serviceUrl,omitempty"`
	DefinitionType  string `json:"definitionType,omitempty"`
	DefinitionURL   string `json:"definitionUrl,omitempty"`
	SourceEntryID   string `json:"sourceEntryId,omitempty"`
}

// EntryVersion is one item of an entry's version list
type EntryVersion struct {
	Entry
	Latest bool `json:"latest"`
}

// EntryVersions is the body of the versions endpoint
type EntryVersions struct {
	Versions []EntryVersion `json:"versions"`
	Count    int            `json:"count"`
}

// EntryRequest is the registryEntry part of a create or update request
type EntryRequest struct {
	Name            string `json:"entryName"`
	DisplayName     string `json:"displayName,omitempty"`
	Version         string `json:"version"`
	ServiceType     string `json:"serviceType,omitempty"`
	ServiceCategory string `json:"serviceCategory,omitempty"`
	ServiceURL      string `json:"serviceUrl,omitempty"`
	DefinitionType  string `json:"definitionType,omitempty"`
	DefinitionURL   string `json:"definitionUrl,omitempty"`
}

// ErrorBody is the body of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

// UniqueName generates a name that does not collide across specs
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// PetstoreYAML is a minimal OpenAPI 3 document in YAML
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
      responses:
        "200":
          description: A list of pets
`

// PetstoreJSON is a minimal OpenAPI 3 document in JSON
const PetstoreJSON = `{"openapi":"3.0.3","info":{"title":"Petstore","version":"1.0.0"},"paths":{}}`

// WeatherWSDL is a minimal WSDL 1.1 document
const WeatherWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  name="WeatherService"
                  targetNamespace="http://example.com/weather">
  <wsdl:portType name="WeatherPort"/>
</wsdl:definitions>
`

// PetsSDL is a minimal GraphQL schema
const PetsSDL = `type Query {
  pets(limit: Int): [Pet!]!
}

type Pet {
  id: ID!
  name: String
}
`
