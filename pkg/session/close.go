package session

import (
	"fmt"
	"os"

	"github.com/pteropackages/soar/pkg/output"
)

// Close renders the final outcome. It returns "" when there is nothing to
// print: no content, or the content was written to the output file.
func (s *Session) Close(result Outcome) (string, error) {
	switch o := result.(type) {
	case nil, NoContent:
		return "", nil
	case JSONBody:
		value := o.Value
		if s.cfg.HTTP.ParseBody {
			value = output.Unwrap(value)
		}
		rendered, err := output.Render(value, s.flags.Format, output.RenderOptions{Indent: s.cfg.HTTP.ParseIndent})
		if err != nil {
			return "", fmt.Errorf("render response: %w", err)
		}
		if s.flags.WriteFile != "" {
			return "", s.writeFile([]byte(rendered + "\n"))
		}
		if s.colour {
			rendered = output.Colorize(rendered, s.flags.Format)
		}
		return rendered, nil
	case BinaryBody:
		if s.flags.WriteFile != "" {
			return "", s.writeFile(o.Data)
		}
		return string(o.Data), nil
	default:
		return "", fmt.Errorf("unsupported outcome %T", result)
	}
}

func (s *Session) writeFile(data []byte) error {
	if err := os.WriteFile(s.flags.WriteFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if !s.flags.Silent {
		fmt.Fprintf(s.out, "✓ wrote response to %s\n", s.flags.WriteFile)
	}
	return nil
}
