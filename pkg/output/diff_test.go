package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pteropackages/soar/pkg/models"
)

var allFormats = []models.Format{models.FormatJSON, models.FormatYAML, models.FormatText}

func TestComputeDiff_ChangedAndAdded(t *testing.T) {
	before := map[string]any{"username": "a", "email": "x@y.com"}
	after := map[string]any{"username": "b", "email": "x@y.com", "language": "en"}

	view := ComputeDiff(before, after, models.FormatJSON)

	assert.Equal(t, 2, view.Additions)
	assert.Equal(t, 1, view.Subtractions)
	assert.Equal(t, 2, view.TotalChanges)
	assert.Equal(t, strings.Join([]string{
		`+ "language": "en"`,
		`- "username": "a"`,
		`+ "username": "b"`,
	}, "\n"), view.Output)

	require.Len(t, view.Entries, 2)
	assert.Equal(t, DiffEntry{Key: "language", Status: DiffStatusAdded, NewValue: "en"}, view.Entries[0])
	assert.Equal(t, DiffEntry{Key: "username", Status: DiffStatusChanged, OldValue: "a", NewValue: "b"}, view.Entries[1])
}

func TestComputeDiff_Removed(t *testing.T) {
	view := ComputeDiff(map[string]any{"external_id": "ext-1", "id": 1.0}, map[string]any{"id": 1.0}, models.FormatText)

	assert.Equal(t, 0, view.Additions)
	assert.Equal(t, 1, view.Subtractions)
	assert.Equal(t, 1, view.TotalChanges)
	assert.Equal(t, "- external_id: ext-1", view.Output)
}

func TestComputeDiff_Idempotent(t *testing.T) {
	snapshot := map[string]any{
		"id":         3.0,
		"username":   "admin",
		"root_admin": true,
		"meta":       map[string]any{"tags": []any{"a", "b"}},
		"deleted_at": nil,
	}

	for _, format := range allFormats {
		t.Run(string(format), func(t *testing.T) {
			view := ComputeDiff(snapshot, snapshot, format)
			assert.Zero(t, view.Additions)
			assert.Zero(t, view.Subtractions)
			assert.Zero(t, view.TotalChanges)
			assert.Empty(t, view.Output)
			assert.Empty(t, view.Entries)
		})
	}
}

func TestComputeDiff_Symmetry(t *testing.T) {
	a := map[string]any{"username": "a", "email": "x@y.com", "first_name": "Ann"}
	b := map[string]any{"username": "b", "email": "x@y.com", "language": "en", "last_name": "Lee"}

	for _, format := range allFormats {
		t.Run(string(format), func(t *testing.T) {
			forward := ComputeDiff(a, b, format)
			backward := ComputeDiff(b, a, format)

			assert.Equal(t, forward.Additions, backward.Subtractions)
			assert.Equal(t, forward.Subtractions, backward.Additions)
			assert.Equal(t, forward.TotalChanges, backward.TotalChanges)
		})
	}
}

func TestComputeDiff_NumericTypesCompareByValue(t *testing.T) {
	view := ComputeDiff(map[string]any{"id": 7.0}, map[string]any{"id": 7}, models.FormatJSON)
	assert.Zero(t, view.TotalChanges)
}

func TestComputeDiff_Formats(t *testing.T) {
	before := map[string]any{"language": "en"}
	after := map[string]any{"language": "fr"}

	tests := []struct {
		format models.Format
		want   string
	}{
		{models.FormatJSON, "- \"language\": \"en\"\n+ \"language\": \"fr\""},
		{models.FormatYAML, "- language: en\n+ language: fr"},
		{models.FormatText, "- language: en\n+ language: fr"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDiff(before, after, tt.format).Output)
		})
	}
}

func TestComputeDiff_MultiLineValuesPrefixEveryLine(t *testing.T) {
	after := map[string]any{"limits": map[string]any{"cpu": 100.0, "memory": 512.0}}

	view := ComputeDiff(map[string]any{}, after, models.FormatYAML)

	assert.Equal(t, "+ limits:\n+     cpu: 100\n+     memory: 512", view.Output)
	assert.Equal(t, 1, view.Additions)
	assert.Equal(t, 1, view.TotalChanges)
}

func TestComputeDiff_NilSnapshots(t *testing.T) {
	view := ComputeDiff(nil, map[string]any{"a": "1"}, models.FormatText)
	assert.Equal(t, 1, view.Additions)
	assert.Equal(t, "+ a: 1", view.Output)
}

func TestHighlightDiff_PreservesContent(t *testing.T) {
	view := ComputeDiff(
		map[string]any{"username": "a", "email": "old@y.com"},
		map[string]any{"username": "b", "email": "new@y.com", "language": "en"},
		models.FormatYAML,
	)

	highlighted := HighlightDiff(view.Output)

	assert.Contains(t, highlighted, "\x1b[", "highlighting emits ANSI colour")
	assert.Equal(t, strings.Count(view.Output, "\n"), strings.Count(highlighted, "\n"))
	assert.Equal(t, view.Output, stripANSI(highlighted))
	assert.Equal(t, 3, view.Additions)
	assert.Equal(t, 2, view.Subtractions)
}

func TestHighlightDiff_Empty(t *testing.T) {
	assert.Equal(t, "", HighlightDiff(""))
}

func TestDiffSummary(t *testing.T) {
	view := &DiffView{Additions: 2, Subtractions: 1, TotalChanges: 2}
	assert.Equal(t, "made 2 changes (+2 | -1)", DiffSummary(view))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
