package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/herx/internal/herx"
	"github.com/spf13/cobra"
)

func newTRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tr <frequency>",
		Short: "Calculate the octave scalar of a frequency",
		Long: `Calculate TR, the octave scalar of a frequency.

TR is the octave number of the frequency (440 Hz is octave 4) multiplied by
36: 12 chromatic steps across 3 hex channels.

Examples:
  herx tr 440
  herx tr 880`,
		Args: cobra.ExactArgs(1),
		RunE: runTR,
	}
}

// runTR executes the tr command.
func runTR(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	frequency, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid frequency %q: %w", args[0], err)
	}

	octave, err := herx.Octave(frequency)
	if err != nil {
		return err
	}
	tr, err := herx.CalculateTR(frequency)
	if err != nil {
		return err
	}
	logger.Debug("calculated tr", "frequency", frequency, "octave", octave, "tr", tr)

	fmt.Fprintf(cmd.OutOrStdout(), "TR: %d (octave %d)\n", tr, octave)
	return nil
}
