package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pteropackages/soar/pkg/models"
)

// RenderOptions controls response rendering.
type RenderOptions struct {
	// Indent pretty-prints JSON output.
	Indent bool
}

// Render formats a decoded JSON value for display.
func Render(value any, format models.Format, opts RenderOptions) (string, error) {
	switch format {
	case models.FormatJSON, "":
		return renderJSON(value, opts.Indent)
	case models.FormatYAML:
		data, err := SerializeYAML(value)
		if err != nil {
			return "", fmt.Errorf("failed to render YAML: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case models.FormatText:
		return renderText(value), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use json, yaml, or text)", format)
	}
}

func renderJSON(value any, indent bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("failed to render JSON: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// renderText flattens nested values into sorted "path: value" lines.
func renderText(value any) string {
	lines := map[string]string{}
	flatten("", value, lines)
	if len(lines) == 0 {
		return ""
	}

	paths := make([]string, 0, len(lines))
	for p := range lines {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return lessPath(paths[i], paths[j]) })

	var b strings.Builder
	for i, p := range paths {
		if i > 0 {
			b.WriteByte('\n')
		}
		if p == "" {
			b.WriteString(lines[p])
			continue
		}
		fmt.Fprintf(&b, "%s: %s", p, lines[p])
	}
	return b.String()
}

func flatten(prefix string, value any, out map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 && prefix != "" {
			out[prefix] = "{}"
		}
		for k, child := range v {
			flatten(joinPath(prefix, k), child, out)
		}
	case []any:
		if len(v) == 0 && prefix != "" {
			out[prefix] = "[]"
		}
		for i, child := range v {
			flatten(joinPath(prefix, strconv.Itoa(i)), child, out)
		}
	case nil:
		out[prefix] = "null"
	default:
		out[prefix] = scalarText(v)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func scalarText(v any) string {
	return models.FormatValue(v)
}

// lessPath orders dotted paths segment by segment, numerically where both
// segments are list indexes.
func lessPath(a, b string) bool {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		ai, errA := strconv.Atoi(as[i])
		bi, errB := strconv.Atoi(bs[i])
		if errA == nil && errB == nil {
			return ai < bi
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}
