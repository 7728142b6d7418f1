package parsers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
)

var (
	ErrRootNotObject   = errors.New("payload root must be an object, not an array or scalar")
	ErrEmptyPayload    = errors.New("payload is empty")
	ErrNoPayload       = errors.New("no payload given; use --data or --file")
	ErrPayloadConflict = errors.New("use either --data or --file, not both")
)

// JSONParser accepts JSON with comments and trailing commas.
type JSONParser struct{}

func (p *JSONParser) FormatName() string {
	return "json"
}

func (p *JSONParser) Parse(data []byte) (map[string]any, error) {
	var root any
	if err := json.Unmarshal(jsonc.ToJSON(data), &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	rootMap, ok := root.(map[string]any)
	if !ok {
		return nil, ErrRootNotObject
	}
	return rootMap, nil
}
