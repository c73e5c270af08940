package definition

// ResolveMediaType maps a definition type to the media type its stored
// content is served with. Unknown types resolve to MediaTypeUnspecified and
// the caller picks a default.
func ResolveMediaType(t Type) MediaType {
	switch t {
	case TypeOAS, TypeGraphQLSDL:
		return MediaTypeJSON
	case TypeWSDL1, TypeWSDL2:
		return MediaTypeXML
	default:
		return MediaTypeUnspecified
	}
}
