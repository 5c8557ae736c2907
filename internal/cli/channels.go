package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctconv/pkg/colour"
)

func newHSLToRGBCmd(a *app) *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "hsl-to-rgb <hue> <saturation> <lightness>",
		Short: "Convert HSL components to rgba()",
		Long: `Convert HSL components to an rgba() string.

Hue is in degrees and is clamped to [0,360); saturation and lightness are
fractions clamped to [0,1]. Channels are printed unrounded.

Examples:
  tinctconv hsl-to-rgb 210 0.5 0.4
  tinctconv hsl-to-rgb --alpha 0.5 0 1 0.5

  # Negative values need the flag terminator
  tinctconv hsl-to-rgb -- -30 1 0.5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseNumbers([]string{"hue", "saturation", "lightness"}, args)
			if err != nil {
				return err
			}

			rgb := colour.HSLToRGB(values[0], values[1], values[2], alpha)
			a.logger.Debug("hsl to rgb", "h", values[0], "s", values[1], "l", values[2], "result", rgb.String())

			return a.write(cmd.OutOrStdout(), rgb, writeLine(rgb.String()))
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", 1, "alpha value (0-1) carried into the result")
	return cmd
}

func newRGBToHSLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb-to-hsl <red> <green> <blue>",
		Short: "Convert RGB channels to hsl()",
		Long: `Convert RGB channels (0-255) to an hsl() string.

The hue is a whole number of degrees; saturation and lightness are rounded
to four decimal places. Channels are not validated: values above 255 can
give an infinite saturation, which prints in text form but cannot be
encoded as JSON or YAML.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseNumbers([]string{"red", "green", "blue"}, args)
			if err != nil {
				return err
			}

			hsl := colour.RGBToHSL(values[0], values[1], values[2])
			a.logger.Debug("rgb to hsl", "r", values[0], "g", values[1], "b", values[2], "result", hsl.String())

			if err := a.write(cmd.OutOrStdout(), hsl, writeLine(hsl.String())); err != nil {
				return fmt.Errorf("failed to write %s for rgb(%s,%s,%s): %w", hsl, args[0], args[1], args[2], err)
			}
			return nil
		},
	}
}

// parseNumbers parses args as floats, naming the offending argument on error.
func parseNumbers(names, args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		values[i] = v
	}
	return values, nil
}
