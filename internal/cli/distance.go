package cli

import (
	"fmt"

	"github.com/jmylchreest/herx/internal/colour"
	"github.com/spf13/cobra"
)

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <colour> <colour>",
		Short: "Euclidean distance between two colours in RGB space",
		Example: `  herx distance "#F2000F" "#C0C0C0"
  herx distance 000000 ffffff`,
		Args: cobra.ExactArgs(2),
		RunE: runDistance,
	}
}

// runDistance executes the distance command.
func runDistance(cmd *cobra.Command, args []string) error {
	a, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}
	b, err := colour.ParseHex(args[1])
	if err != nil {
		return err
	}

	d := colour.Distance(a, b)
	newLogger(cmd).Debug("calculated distance", "a", a.Hex(), "b", b.Hex(), "distance", d)

	fmt.Fprintf(cmd.OutOrStdout(), "Distance: %s\n", formatFloat(d))
	return nil
}
