package fundfolio

// UnknownScheme is the display name used when a scheme id has no mapping.
const UnknownScheme = "Unknown"

// Mapping resolves scheme ids to human readable fund names.
type Mapping map[string]string

// Name returns the mapped name for a scheme id, or UnknownScheme.
func (m Mapping) Name(schemeID string) string {
	if name, ok := m[schemeID]; ok && name != "" {
		return name
	}
	return UnknownScheme
}
