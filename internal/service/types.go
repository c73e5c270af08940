package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
)

// RegistryType is the kind of backend an endpoint registry mirrors
type RegistryType string

const (
	// RegistryTypeWSO2 is a registry managed by this service
	RegistryTypeWSO2 RegistryType = "WSO2"
	// RegistryTypeEtcd mirrors an etcd service catalog
	RegistryTypeEtcd RegistryType = "ETCD"
	// RegistryTypeK8s mirrors Kubernetes services
	RegistryTypeK8s RegistryType = "K8"
	// RegistryTypeConsul mirrors a Consul catalog
	RegistryTypeConsul RegistryType = "CONSUL"
	// RegistryTypeEureka mirrors a Eureka catalog
	RegistryTypeEureka RegistryType = "EUREKA"
)

// ServiceType is the protocol family an entry's endpoint speaks
type ServiceType string

const (
	// ServiceTypeREST is a REST endpoint
	ServiceTypeREST ServiceType = "REST"
	// ServiceTypeSOAP11 is a SOAP 1.1 endpoint
	ServiceTypeSOAP11 ServiceType = "SOAP_1_1"
	// ServiceTypeGraphQL is a GraphQL endpoint
	ServiceTypeGraphQL ServiceType = "GQL"
	// ServiceTypeWebSocket is a WebSocket endpoint
	ServiceTypeWebSocket ServiceType = "WS"
)

// ServiceCategory classifies where an entry's endpoint sits
type ServiceCategory string

const (
	// ServiceCategoryUtility is a shared utility service
	ServiceCategoryUtility ServiceCategory = "UTILITY"
	// ServiceCategoryEdge is an edge service
	ServiceCategoryEdge ServiceCategory = "EDGE"
	// ServiceCategorySelfContained is a self-contained service
	ServiceCategorySelfContained ServiceCategory = "SELF_CONTAINED"
)

// IsValid reports whether t is a known registry type
func (t RegistryType) IsValid() bool {
	switch t {
	case RegistryTypeWSO2, RegistryTypeEtcd, RegistryTypeK8s, RegistryTypeConsul, RegistryTypeEureka:
		return true
	default:
		return false
	}
}

// IsValid reports whether t is a known service type
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeREST, ServiceTypeSOAP11, ServiceTypeGraphQL, ServiceTypeWebSocket:
		return true
	default:
		return false
	}
}

// IsValid reports whether c is a known service category
func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceCategoryUtility, ServiceCategoryEdge, ServiceCategorySelfContained:
		return true
	default:
		return false
	}
}

// ParseRegistryType parses a registry type name, ignoring case
func ParseRegistryType(s string) (RegistryType, error) {
	t := RegistryType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown registry type %q", ErrBadInput, s)
	}
	return t, nil
}

// Registry is a tenant-owned, named collection of entries
type Registry struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName,omitempty"`
	Type        RegistryType `json:"type"`
	Tenant      string       `json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// RegistryMetadata holds the caller-controlled fields of a registry.
// ID is only honored on creation and is normally left empty.
type RegistryMetadata struct {
	ID          string
	Name        string
	DisplayName string
	Type        RegistryType
}

// Entry is one version of an endpoint description within a registry.
// Every version is an independent record; SourceEntryID links a version to
// the entry it was created from.
type Entry struct {
	ID                string          `json:"id"`
	RegistryID        string          `json:"registryId"`
	Name              string          `json:"entryName"`
	DisplayName       string          `json:"displayName,omitempty"`
	Version           string          `json:"version"`
	ServiceType       ServiceType     `json:"serviceType,omitempty"`
	ServiceCategory   ServiceCategory `json:"serviceCategory,omitempty"`
	ServiceURL        string          `json:"serviceUrl,omitempty"`
	DefinitionType    definition.Type `json:"definitionType,omitempty"`
	DefinitionURL     string          `json:"definitionUrl,omitempty"`
	DefinitionContent []byte          `json:"-"`
	SourceEntryID     string          `json:"sourceEntryId,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// HasDefinition reports whether the entry stores definition bytes
func (e *Entry) HasDefinition() bool {
	return len(e.DefinitionContent) > 0
}

// Clone returns a deep copy of e
func (e *Entry) Clone() *Entry {
	c := *e
	if e.DefinitionContent != nil {
		c.DefinitionContent = append([]byte(nil), e.DefinitionContent...)
	}
	return &c
}

// EntryMetadata holds the caller-controlled fields of an entry. DefinitionType
// describes the accompanying definition.Source and is required whenever a
// source is supplied.
type EntryMetadata struct {
	Name            string          `json:"entryName"`
	DisplayName     string          `json:"displayName,omitempty"`
	Version         string          `json:"version"`
	ServiceType     ServiceType     `json:"serviceType,omitempty"`
	ServiceCategory ServiceCategory `json:"serviceCategory,omitempty"`
	ServiceURL      string          `json:"serviceUrl,omitempty"`
	DefinitionType  definition.Type `json:"definitionType,omitempty"`
}

// Definition is a stored definition ready to be served
type Definition struct {
	Type      definition.Type
	MediaType definition.MediaType
	Content   []byte
}

// EntryVersion is one member of an entry's lineage. Latest is false for
// versions superseded by a newer one with the same name.
type EntryVersion struct {
	*Entry
	Latest bool `json:"latest"`
}
