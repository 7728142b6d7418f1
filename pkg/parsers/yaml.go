package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type YAMLParser struct{}

func (p *YAMLParser) FormatName() string {
	return "yaml"
}

// Parse decodes the first YAML document. Later documents are ignored with a warning.
func (p *YAMLParser) Parse(data []byte) (map[string]any, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var root any
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPayload
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	rootMap, ok := root.(map[string]any)
	if !ok {
		return nil, ErrRootNotObject
	}

	var extra any
	if err := decoder.Decode(&extra); err == nil {
		fmt.Fprintf(os.Stderr, "Warning: YAML payload contains multiple documents, only the first document is used\n")
	}
	return rootMap, nil
}
