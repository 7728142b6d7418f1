package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pteropackages/soar/pkg/models"
)

func sampleUser() map[string]any {
	return map[string]any{
		"object": "user",
		"attributes": map[string]any{
			"id":         1.0,
			"username":   "admin",
			"root_admin": true,
			"language":   "en",
		},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		format models.Format
		indent bool
		want   string
	}{
		{
			name:   "json indented",
			value:  map[string]any{"b": 1.0, "a": "x"},
			format: models.FormatJSON,
			indent: true,
			want:   "{\n  \"a\": \"x\",\n  \"b\": 1\n}",
		},
		{
			name:   "json compact",
			value:  map[string]any{"b": 1.0, "a": "<x>"},
			format: models.FormatJSON,
			want:   `{"a":"<x>","b":1}`,
		},
		{
			name:   "yaml",
			value:  map[string]any{"b": 1.0, "a": "true", "c": nil},
			format: models.FormatYAML,
			want:   "a: \"true\"\nb: 1\nc: null",
		},
		{
			name:   "text nested",
			value:  sampleUser(),
			format: models.FormatText,
			want:   "attributes.id: 1\nattributes.language: en\nattributes.root_admin: true\nattributes.username: admin\nobject: user",
		},
		{
			name:   "text list indexes in numeric order",
			value:  map[string]any{"data": []any{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}},
			format: models.FormatText,
			want:   "data.0: a\ndata.1: b\ndata.2: c\ndata.3: d\ndata.4: e\ndata.5: f\ndata.6: g\ndata.7: h\ndata.8: i\ndata.9: j\ndata.10: k",
		},
		{
			name:   "text scalar",
			value:  "plain",
			format: models.FormatText,
			want:   "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.value, tt.format, RenderOptions{Indent: tt.indent})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(map[string]any{}, models.Format("table"), RenderOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestUnwrap(t *testing.T) {
	t.Run("single resource", func(t *testing.T) {
		got := Unwrap(sampleUser())
		assert.Equal(t, sampleUser()["attributes"], got)
	})

	t.Run("list", func(t *testing.T) {
		list := map[string]any{
			"object": "list",
			"data":   []any{sampleUser(), sampleUser()},
			"meta":   map[string]any{"pagination": map[string]any{"total": 2.0}},
		}
		got, ok := Unwrap(list).([]any)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "admin", got[0].(map[string]any)["username"])
	})

	t.Run("plain object untouched", func(t *testing.T) {
		plain := map[string]any{"attributes": map[string]any{"a": 1.0}}
		assert.Equal(t, plain, Unwrap(plain))
	})

	t.Run("non object untouched", func(t *testing.T) {
		assert.Equal(t, "x", Unwrap("x"))
	})
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, "admin", Attributes(sampleUser())["username"])
	assert.Equal(t, map[string]any{"a": 1.0}, Attributes(map[string]any{"a": 1.0}))
	assert.Empty(t, Attributes(nil))
}

func TestColorize(t *testing.T) {
	src := "{\n  \"a\": 1\n}"

	assert.Contains(t, Colorize(src, models.FormatJSON), "\x1b[")
	assert.Contains(t, Colorize("a: 1", models.FormatYAML), "\x1b[")
	assert.Equal(t, "a: 1", Colorize("a: 1", models.FormatText))
	assert.Contains(t, stripANSI(Colorize(src, models.FormatJSON)), `"a"`)
}
