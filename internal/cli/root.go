// Package cli provides the command-line interface for herx.
package cli

import (
	"fmt"

	"github.com/jmylchreest/herx/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the herx command tree.
// A fresh tree is returned on every call so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "herx",
		Short: "Herxheimer BPM calculator",
		Long: `herx evaluates the Herxheimer BPM formula from a frequency and three colours.

The formula combines the RGB distance between two colours, an octave scalar
derived from the frequency, and the distance between a base colour and its
darker neighbour into a single rounded BPM value.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().String("config", "", "config file (default: herx.yaml in . or the user config dir)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newBPMCmd())
	rootCmd.AddCommand(newTRCmd())
	rootCmd.AddCommand(newDistanceCmd())
	rootCmd.AddCommand(newSimilarCmd())
	rootCmd.AddCommand(newSwatchCmd())

	return rootCmd
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
