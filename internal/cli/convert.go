package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctconv/pkg/colour"
)

// conversion is the full set of representations reported for one input.
type conversion struct {
	Input     string     `json:"input" yaml:"input"`
	Colour    bool       `json:"colour" yaml:"colour"`
	Hex       string     `json:"hex" yaml:"hex"`
	RGB       colour.RGB `json:"rgb" yaml:"rgb"`
	HSL       colour.HSL `json:"hsl" yaml:"hsl"`
	Name      string     `json:"name" yaml:"name"`
	ExactName bool       `json:"exact_name" yaml:"exact_name"`
}

func convertColour(input string) conversion {
	rgb := colour.ToRGB(input)
	name, exact := colour.NearestName(rgb)
	return conversion{
		Input:     input,
		Colour:    colour.IsColor(input),
		Hex:       rgb.Hex(),
		RGB:       rgb,
		HSL:       colour.GetHSL(input),
		Name:      name,
		ExactName: exact,
	}
}

// displayName returns the colour name, marked when it is only the nearest match.
func (c conversion) displayName() string {
	if c.ExactName {
		return c.Name
	}
	return c.Name + " (nearest)"
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in every supported representation",
		Long: `Convert a hex or rgb()/rgba() colour string to hex, rgba() and hsl() forms,
and report the nearest CSS colour name.

Anything that is not a recognised colour converts to opaque black.

Examples:
  # Convert a hex colour
  tinctconv convert '#7aa2f7'

  # Convert an rgba() string and output JSON
  tinctconv convert --format json 'rgba(26,27,38,0.8)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := convertColour(args[0])
			if !result.Colour {
				a.logger.Warn("input is not a recognised colour, using black", "input", args[0])
			}
			a.logger.Debug("converted", "input", result.Input, "hex", result.Hex)

			w := cmd.OutOrStdout()
			return a.write(w, result, func(w io.Writer) error {
				if a.previewEnabled(w) {
					if _, err := fmt.Fprintln(w, colour.SwatchWithText(result.RGB, result.Hex, 12)); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintf(w, "hex:  %s\nrgb:  %s\nhsl:  %s\nname: %s\n",
					result.Hex, result.RGB, result.HSL, result.displayName())
				return err
			})
		},
	}
}

func newIsColourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "is-colour <string>",
		Aliases: []string{"is-color"},
		Short:   "Report whether a string looks like a colour",
		Long: `Report whether a string looks like a colour.

This is a loose check: any string containing "rgb" or "#" is treated as a
colour. Named colours such as "blue" are not recognised.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := struct {
				Input  string `json:"input" yaml:"input"`
				Colour bool   `json:"colour" yaml:"colour"`
			}{
				Input:  args[0],
				Colour: colour.IsColor(args[0]),
			}
			return a.write(cmd.OutOrStdout(), result, writeLine(fmt.Sprint(result.Colour)))
		},
	}
}
