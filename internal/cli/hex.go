package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctconv/pkg/colour"
)

func newRGBToHexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb-to-hex <rgb-string>",
		Short: "Convert an rgb() or rgba() string to hex",
		Long: `Convert an rgb() or rgba() string to an upper-case hex string.

Opaque colours print as #RRGGBB, translucent ones as #RRGGBBAA. Input that is
not an rgb() or rgba() string is printed unchanged.

Examples:
  tinctconv rgb-to-hex 'rgb(122,162,247)'
  tinctconv rgb-to-hex 'rgba(26,27,38,0.5)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			hex := colour.RGBStringToHex(input)

			_, recognised := colour.ParseRGB(input)
			if !recognised {
				a.logger.Debug("input is not an rgb string, passing through", "input", input)
			}

			result := struct {
				Input      string `json:"input" yaml:"input"`
				Hex        string `json:"hex" yaml:"hex"`
				Recognised bool   `json:"recognised" yaml:"recognised"`
			}{
				Input:      input,
				Hex:        hex,
				Recognised: recognised,
			}
			return a.write(cmd.OutOrStdout(), result, writeLine(hex))
		},
	}
}

func newHexToRGBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hex-to-rgb <hex>",
		Short: "Convert a #RGB or #RRGGBB hex string to rgba()",
		Long: `Convert a #RGB, #RRGGBB or RRGGBB hex string to an rgba() string.

Eight digit hex values with alpha are not accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, ok := colour.HexToRGB(args[0])
			if !ok {
				return fmt.Errorf("invalid hex colour %q (expected #RGB, #RRGGBB or RRGGBB)", args[0])
			}
			a.logger.Debug("hex to rgb", "input", args[0], "result", rgb.String())

			return a.write(cmd.OutOrStdout(), rgb, writeLine(rgb.String()))
		},
	}
}
