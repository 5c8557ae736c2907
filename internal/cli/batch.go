package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/jmylchreest/tinctconv/pkg/colour"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one colour per line from a file or stdin",
		Long: `Convert a list of colours, one per line, read from a file or stdin.

Blank lines are skipped. Lines that do not look like a colour are reported
as errors after every other line has been converted; the command then exits
non-zero.

Examples:
  # Convert colours listed in a file
  tinctconv batch palette.txt

  # Convert colours from a pipe and output YAML
  grep -o '#[0-9a-f]\{6\}' theme.css | tinctconv batch --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runBatch,
	}
}

func (a *app) runBatch(cmd *cobra.Command, args []string) (err error) {
	in := cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return fmt.Errorf("failed to open input: %w", openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		in = f
		source = args[0]
	}

	a.logger.Debug("reading colours", "source", source)
	results, convErr := a.convertLines(in)
	a.logger.Debug("batch complete", "converted", len(results), "failed", len(multierr.Errors(convErr)))

	w := cmd.OutOrStdout()
	writeErr := a.write(w, results, func(w io.Writer) error {
		return writeBatchTable(w, results)
	})

	return multierr.Combine(convErr, writeErr)
}

// convertLines converts every non-blank line of r. Lines that are not
// colours are collected as errors and do not stop processing.
func (a *app) convertLines(r io.Reader) ([]conversion, error) {
	results := make([]conversion, 0)
	var errs error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !colour.IsColor(line) {
			a.logger.Debug("skipping line", "line", lineNo, "input", line)
			errs = multierr.Append(errs, fmt.Errorf("line %d: %q is not a colour", lineNo, line))
			continue
		}
		results = append(results, convertColour(line))
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("failed to read input: %w", err))
	}

	return results, errs
}

func writeBatchTable(w io.Writer, results []conversion) error {
	if len(results) == 0 {
		return nil
	}

	table := NewTable([]string{"INPUT", "HEX", "RGB", "HSL", "NAME"})
	for _, r := range results {
		table.AddRow([]string{r.Input, r.Hex, r.RGB.String(), r.HSL.String(), r.displayName()})
	}

	_, err := io.WriteString(w, table.Render())
	return err
}
