package definition

import (
	"bytes"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Normalize converts accepted definition bytes into the form they are stored
// in. OAS documents that are not already JSON are converted from YAML to
// JSON; JSON documents and every other type are returned unchanged.
//
// Normalize must only be called on content the validator accepted.
func Normalize(data []byte, t Type) ([]byte, error) {
	switch t {
	case TypeOAS:
		if isJSONObject(data) {
			return data, nil
		}
		out, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTransform, t, err)
		}
		return out, nil
	case TypeGraphQLSDL, TypeWSDL1, TypeWSDL2:
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
}

// isJSONObject reports whether data looks like a JSON object once leading
// whitespace is ignored
func isJSONObject(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}
