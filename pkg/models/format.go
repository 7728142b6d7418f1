package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is the rendering format of a response.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// IsValid checks if the format is one soar can render.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatText:
		return true
	default:
		return false
	}
}

// Extension returns the file extension used when writing the format to disk.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid format %q (valid: json, yaml, text)", s)
	}
	return f, nil
}

// FormatValue converts a scalar value to a display string.
// Returns empty string for nil values.
func FormatValue(val any) string {
	if val == nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
