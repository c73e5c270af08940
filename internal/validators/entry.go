// Package validators checks the names and versions callers give registries and entries.
package validators

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxNameLength    = 255
	maxVersionLength = 64
)

var (
	// Names start and end with an alphanumeric and may contain spaces, dots, underscores and hyphens
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9 ._-]*[a-zA-Z0-9])?$`)

	// Versions are a single token: no whitespace, no path separators
	versionPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.+_-]*$`)
)

// ValidateName validates a registry or entry name and returns it trimmed.
//
// Examples of valid names:
//   - petstore
//   - Weather Service
//   - billing-api_v2
//
// Examples of invalid names:
//   - -petstore (starts with a hyphen)
//   - pets/store (contains a slash)
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if len(name) > maxNameLength {
		return "", fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf(
			"name '%s' is invalid. Name must start and end with alphanumeric characters, "+
				"and may contain spaces, dots, underscores, and hyphens in the middle",
			name,
		)
	}
	return name, nil
}

// ValidateVersion validates an entry version and returns it trimmed. Any
// token is accepted; semantic versions only matter for ordering.
func ValidateVersion(version string) (string, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return "", fmt.Errorf("version cannot be empty")
	}
	if len(version) > maxVersionLength {
		return "", fmt.Errorf("version exceeds maximum length of %d characters", maxVersionLength)
	}
	if !versionPattern.MatchString(version) {
		return "", fmt.Errorf(
			"version '%s' is invalid. Version must start with an alphanumeric character "+
				"and may contain dots, plus signs, underscores, and hyphens",
			version,
		)
	}
	return version, nil
}

// IsValidName is a boolean convenience wrapper around ValidateName
func IsValidName(name string) bool {
	_, err := ValidateName(name)
	return err == nil
}
