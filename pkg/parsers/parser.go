// Package parsers decodes request payloads given on the command line or in files.
package parsers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PayloadFormat is the encoding of a request payload.
type PayloadFormat string

const (
	PayloadJSON PayloadFormat = "json"
	PayloadYAML PayloadFormat = "yaml"
)

// Parser decodes a payload whose root must be an object.
type Parser interface {
	Parse(data []byte) (map[string]any, error)

	// FormatName returns the name of the format this parser handles
	FormatName() string
}

// Registry maintains a mapping of payload formats to their parsers
type Registry struct {
	parsers map[PayloadFormat]Parser
}

// NewRegistry creates a new parser registry with default parsers
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[PayloadFormat]Parser),
	}

	r.Register(PayloadJSON, &JSONParser{})
	r.Register(PayloadYAML, &YAMLParser{})

	return r
}

// Register adds a parser to the registry
func (r *Registry) Register(format PayloadFormat, parser Parser) {
	r.parsers[format] = parser
}

// GetParser returns the parser for the specified format
func (r *Registry) GetParser(format PayloadFormat) (Parser, error) {
	parser, ok := r.parsers[format]
	if !ok {
		return nil, fmt.Errorf("no parser registered for format: %s", format)
	}
	return parser, nil
}

// DetectFormat picks the payload format from a file extension. Anything
// that is not .yaml or .yml is read as JSON.
func DetectFormat(path string) PayloadFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return PayloadYAML
	default:
		return PayloadJSON
	}
}

// ParsePayload decodes data with the registered parser for format.
func ParsePayload(data []byte, format PayloadFormat) (map[string]any, error) {
	parser, err := NewRegistry().GetParser(format)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyPayload
	}
	return parser.Parse(data)
}

// ReadPayload decodes an inline JSON payload or the file at path. Exactly
// one of the two must be set.
func ReadPayload(inline, path string) (map[string]any, error) {
	switch {
	case inline != "" && path != "":
		return nil, ErrPayloadConflict
	case inline != "":
		return ParsePayload([]byte(inline), PayloadJSON)
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		return ParsePayload(data, DetectFormat(path))
	default:
		return nil, ErrNoPayload
	}
}
