package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeYAML(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"sorted keys", map[string]any{"z": "1", "a": "2"}, "a: \"2\"\nz: \"1\"\n"},
		{"whole floats as ints", map[string]any{"id": 12.0, "ratio": 0.5}, "id: 12\nratio: 0.5\n"},
		{"bools and null", map[string]any{"admin": false, "external_id": nil}, "admin: false\nexternal_id: null\n"},
		{"string that looks like null", map[string]any{"v": "null"}, "v: \"null\"\n"},
		{"multi-line block scalar", map[string]any{"motd": "line1\nline2"}, "motd: |-\n    line1\n    line2\n"},
		{"list", []any{"a", 1.0}, "- a\n- 1\n"},
		{"json number", map[string]any{"n": json.Number("42")}, "n: 42\n"},
		{"int64", map[string]any{"n": int64(9)}, "n: 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializeYAML(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSerializeYAML_FallbackTypes(t *testing.T) {
	type limits struct {
		Memory int `yaml:"memory"`
	}
	got, err := SerializeYAML(map[string]any{"limits": limits{Memory: 512}})
	require.NoError(t, err)
	assert.Equal(t, "limits:\n    memory: 512\n", string(got))
}
