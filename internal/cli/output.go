package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// write renders v in the configured format. In text mode the text callback
// is used instead.
func (a *app) write(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.config.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return text(w)
	}
}

func writeYAML(w io.Writer, v any) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer multierr.AppendInvoke(&err, multierr.Close(enc))

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// writeLine returns a text callback printing a single line.
func writeLine(line string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, line)
		return err
	}
}
