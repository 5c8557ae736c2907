// Package cli provides the command-line interface for tinctconv.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctconv/internal/version"
	"github.com/jmylchreest/tinctconv/pkg/colour"
)

// app carries the state shared by every command of one root command tree.
type app struct {
	config Config
	logger hclog.Logger

	// Flag targets, folded into config by setup.
	format  Format
	preview bool
	verbose bool
	quiet   bool
}

// NewRootCmd builds the tinctconv command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		config: DefaultConfig(),
		logger: hclog.NewNullLogger(),
		format: FormatText,
	}

	rootCmd := &cobra.Command{
		Use:   "tinctconv",
		Short: "Convert colours between HSL, RGB, hex and CSS strings",
		Long: `tinctconv converts colours between HSL, RGB, hexadecimal and CSS string forms.

Conversions never fail: unrecognised rgb() strings are passed through,
invalid hex values are reported, and anything else converts to opaque black.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output (overrides --verbose)")
	rootCmd.PersistentFlags().VarP(&a.format, "format", "f", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.preview, "preview", false, "show colour swatches in terminal output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(a),
		newHSLToRGBCmd(a),
		newRGBToHSLCmd(a),
		newRGBToHexCmd(a),
		newHexToRGBCmd(a),
		newIsColourCmd(a),
		newBatchCmd(a),
	)

	return rootCmd
}

// setup resolves configuration from the environment and flags and
// configures logging. Flags take precedence over the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(a.verbose && !a.quiet, cmd.ErrOrStderr())

	config, err := NewConfigBuilder().WithEnvConfig().Build()
	if err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		config.Format = a.format
	}
	if flags.Changed("preview") {
		config.Preview = a.preview
	}
	a.config = config

	a.logger.Debug("configuration resolved",
		"format", config.Format,
		"preview", config.Preview,
		"no_color", config.NoColor)
	return nil
}

// previewEnabled reports whether swatches should be written to w.
func (a *app) previewEnabled(w io.Writer) bool {
	if !a.config.Preview || a.config.NoColor || a.config.Format != FormatText {
		return false
	}
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSI(f.Fd())
}

// newLogger returns a named hclog logger that writes debug output to w when
// verbose is set and discards everything otherwise.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tinctconv",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tinctconv",
		Output: w,
		Level:  hclog.Debug,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
