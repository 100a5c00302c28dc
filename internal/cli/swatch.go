package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/herx/internal/swatch"
	"github.com/spf13/cobra"
)

func newSwatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatch",
		Short: "Render the colours of an evaluation as a PNG",
		Long: `Render colour1, colour2, base and the darkened similar colour as a PNG swatch.

Inputs are resolved the same way as for the bpm command.

Examples:
  herx swatch --output swatch.png
  herx swatch --base 336699 --no-labels -o - > swatch.png`,
		Args: cobra.NoArgs,
		RunE: runSwatch,
	}

	registerInputFlags(cmd)
	defaults := swatch.DefaultOptions()
	cmd.Flags().StringP("output", "o", "", "output file, - for stdout (required)")
	cmd.Flags().Int("width", defaults.BlockWidth, "width of each colour block in pixels")
	cmd.Flags().Int("height", defaults.BlockHeight, "height of each colour block in pixels")
	cmd.Flags().Bool("no-labels", false, "omit the label and hex code on each block")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// runSwatch executes the swatch command.
func runSwatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	res, err := evaluate(cfg, logger)
	if err != nil {
		return err
	}

	opts := swatch.DefaultOptions()
	opts.BlockWidth, _ = cmd.Flags().GetInt("width")
	opts.BlockHeight, _ = cmd.Flags().GetInt("height")
	noLabels, _ := cmd.Flags().GetBool("no-labels")
	opts.Labels = !noLabels

	output, _ := cmd.Flags().GetString("output")
	entries := swatch.EntriesFromResult(res)
	if err := opts.Validate(len(entries)); err != nil {
		return err
	}
	if output == "-" {
		return swatch.Encode(cmd.OutOrStdout(), entries, opts)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := swatch.Encode(f, entries, opts); err != nil {
		f.Close()
		os.Remove(output)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(output)
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("wrote swatch", "path", output)
	return nil
}
