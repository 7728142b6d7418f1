package output

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SerializeYAML serializes a decoded JSON value to YAML. Map keys are sorted,
// multi-line strings become block scalars, and whole floats print as integers.
func SerializeYAML(value any) ([]byte, error) {
	node, err := toNode(value)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range sortedKeys(val) {
			child, err := toNode(val[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, child)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range val {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case string:
		// Tagged !!str so "true" or "null" stay quoted strings.
		node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}
		if strings.Contains(val, "\n") {
			node.Style = yaml.LiteralStyle
		}
		return node, nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return scalarNode("!!int", strconv.FormatInt(int64(val), 10)), nil
		}
		return scalarNode("!!float", strconv.FormatFloat(val, 'f', -1, 64)), nil
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return scalarNode("!!int", val.String()), nil
		}
		return scalarNode("!!float", val.String()), nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(val); err != nil {
			return nil, err
		}
		return node, nil
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
