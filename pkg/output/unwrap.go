package output

// Unwrap strips the panel's resource envelopes: {"object": ..., "attributes": {...}}
// becomes the attributes, and {"object": "list", "data": [...]} becomes the
// list of unwrapped items. Other values are returned unchanged.
func Unwrap(value any) any {
	m, ok := value.(map[string]any)
	if !ok {
		return value
	}
	if _, isObject := m["object"]; !isObject {
		return value
	}

	if data, ok := m["data"].([]any); ok {
		out := make([]any, 0, len(data))
		for _, item := range data {
			out = append(out, Unwrap(item))
		}
		return out
	}
	if attrs, ok := m["attributes"].(map[string]any); ok {
		return attrs
	}
	return value
}

// Attributes returns the attribute map of a single-resource response, or the
// value itself when it is already a plain object.
func Attributes(value any) map[string]any {
	m, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	if attrs, ok := m["attributes"].(map[string]any); ok {
		return attrs
	}
	return m
}
