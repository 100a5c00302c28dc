package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/herx/internal/colour"
	"github.com/jmylchreest/herx/internal/config"
	"github.com/spf13/cobra"
)

func newSimilarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar <colour> <distance>",
		Short: "Shift a colour along the grey diagonal by a distance",
		Long: `Shift every channel of a colour by distance/sqrt(3), clamped to [0, 255].

The colour is darkened unless --lighter is given.

Examples:
  herx similar "#5A3442" 265.88
  herx similar 336699 50 --lighter`,
		Args: cobra.ExactArgs(2),
		RunE: runSimilar,
	}

	cmd.Flags().Bool("lighter", false, "lighten instead of darken")
	cmd.Flags().String(config.KeyPreview, config.PreviewAuto, "show colour previews (auto, always, never)")

	return cmd
}

// runSimilar executes the similar command.
func runSimilar(cmd *cobra.Command, args []string) error {
	base, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}

	distance, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid distance %q: %w", args[1], err)
	}

	lighter, _ := cmd.Flags().GetBool("lighter")
	similar := colour.FindSimilar(base, distance, lighter)
	newLogger(cmd).Debug("found similar colour", "base", base.Hex(), "distance", distance, "lighter", lighter, "similar", similar.Hex())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, similar.Hex())

	mode, _ := cmd.Flags().GetString(config.KeyPreview)
	if wantPreview(mode, out) {
		fmt.Fprintln(out, colour.ColourPreviewWithText(base, base.Hex(), previewWidth)+" "+
			colour.ColourPreviewWithText(similar, similar.Hex(), previewWidth))
	}
	return nil
}
