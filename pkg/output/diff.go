package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pteropackages/soar/pkg/models"
)

// DiffStatus represents the status of a key in the diff
type DiffStatus string

const (
	DiffStatusAdded   DiffStatus = "added"
	DiffStatusRemoved DiffStatus = "removed"
	DiffStatusChanged DiffStatus = "changed"
)

// DiffEntry represents a single key difference
type DiffEntry struct {
	Key      string     `json:"key"`
	Status   DiffStatus `json:"status"`
	OldValue any        `json:"old_value,omitempty"`
	NewValue any        `json:"new_value,omitempty"`
}

// DiffView is the rendered difference between two attribute snapshots.
// A changed key counts once in Additions, once in Subtractions and once in
// TotalChanges.
type DiffView struct {
	Additions    int
	Subtractions int
	TotalChanges int
	Output       string
	Entries      []DiffEntry
}

// ComputeDiff compares two snapshots key by key. Unchanged keys are omitted.
// Output holds one "- " line per removed or old value and one "+ " line per
// added or new value, ordered by key, in the given format.
func ComputeDiff(before, after map[string]any, format models.Format) *DiffView {
	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	view := &DiffView{}
	var lines []string
	for _, k := range sorted {
		oldVal, inBefore := before[k]
		newVal, inAfter := after[k]

		var entry DiffEntry
		switch {
		case inBefore && inAfter:
			if valuesEqual(oldVal, newVal) {
				continue
			}
			entry = DiffEntry{Key: k, Status: DiffStatusChanged, OldValue: oldVal, NewValue: newVal}
			view.Additions++
			view.Subtractions++
			lines = append(lines, prefixLines("- ", diffLine(k, oldVal, format))...)
			lines = append(lines, prefixLines("+ ", diffLine(k, newVal, format))...)
		case inAfter:
			entry = DiffEntry{Key: k, Status: DiffStatusAdded, NewValue: newVal}
			view.Additions++
			lines = append(lines, prefixLines("+ ", diffLine(k, newVal, format))...)
		default:
			entry = DiffEntry{Key: k, Status: DiffStatusRemoved, OldValue: oldVal}
			view.Subtractions++
			lines = append(lines, prefixLines("- ", diffLine(k, oldVal, format))...)
		}
		view.TotalChanges++
		view.Entries = append(view.Entries, entry)
	}

	view.Output = strings.Join(lines, "\n")
	return view
}

// valuesEqual compares decoded values by their JSON encoding so that numbers
// decoded from different sources (float64 vs int) compare equal.
func valuesEqual(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(ja) == string(jb)
}

func diffLine(key string, value any, format models.Format) string {
	switch format {
	case models.FormatYAML:
		data, err := SerializeYAML(map[string]any{key: value})
		if err != nil {
			return fmt.Sprintf("%s: %v", key, value)
		}
		return strings.TrimRight(string(data), "\n")
	case models.FormatText:
		if rendered := renderText(map[string]any{key: value}); rendered != "" {
			return rendered
		}
		return key + ":"
	default:
		keyJSON, _ := json.Marshal(key)
		valJSON, err := json.Marshal(value)
		if err != nil {
			valJSON = []byte(fmt.Sprintf("%q", fmt.Sprint(value)))
		}
		return string(keyJSON) + ": " + string(valJSON)
	}
}

func prefixLines(prefix, block string) []string {
	parts := strings.Split(block, "\n")
	for i, p := range parts {
		parts[i] = prefix + p
	}
	return parts
}

// DiffSummary returns the one-line change count.
func DiffSummary(v *DiffView) string {
	return fmt.Sprintf("made %d changes (+%d | -%d)", v.TotalChanges, v.Additions, v.Subtractions)
}

// HighlightDiff colours "+" lines green and "-" lines red. It always emits
// colour; callers decide whether colour is wanted. Line count and text are
// preserved.
func HighlightDiff(s string) string {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI256))
	r.SetColorProfile(termenv.ANSI256)
	return highlightWith(newDiffStyles(r), s)
}

func highlightWith(styles diffStyles, s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+ "):
			lines[i] = styles.added.Render(line)
		case strings.HasPrefix(line, "- "):
			lines[i] = styles.removed.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
