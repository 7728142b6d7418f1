package output

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/pteropackages/soar/pkg/models"
)

// Colorize syntax-highlights rendered JSON or YAML for a 256-colour terminal.
// Text output, and anything chroma fails on, is returned as is.
func Colorize(text string, format models.Format) string {
	var language string
	switch format {
	case models.FormatJSON:
		language = "json"
	case models.FormatYAML:
		language = "yaml"
	default:
		return text
	}

	var buffer bytes.Buffer
	if err := quick.Highlight(&buffer, text, language, "terminal256", "monokai"); err != nil {
		return text
	}
	return strings.TrimRight(buffer.String(), "\n")
}
