package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/herx/internal/colour"
	"github.com/jmylchreest/herx/internal/config"
	"github.com/jmylchreest/herx/internal/herx"
	"github.com/spf13/cobra"
)

const previewWidth = 11

func newBPMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bpm",
		Short: "Calculate the Herxheimer BPM",
		Long: `Calculate the Herxheimer BPM from a frequency and three colours.

Inputs are resolved from flags, then HERX_* environment variables, then a
config file, then the reference values (440 Hz, #F2000F, #C0C0C0, #5A3442).

Examples:
  # Evaluate the reference input
  herx bpm

  # One octave up
  herx bpm --frequency 880

  # Custom colours with a breakdown of every step
  herx bpm --colour1 ff0000 --colour2 00ff00 --base 336699 --format table

  # Machine-readable output
  herx bpm -f json`,
		Args: cobra.NoArgs,
		RunE: runBPM,
	}

	registerInputFlags(cmd)
	cmd.Flags().StringP(config.KeyFormat, "f", config.FormatText, "output format (text, json, table)")
	cmd.Flags().String(config.KeyPreview, config.PreviewAuto, "show colour previews (auto, always, never)")

	return cmd
}

// registerInputFlags registers the four formula inputs on cmd.
func registerInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(config.KeyFrequency, herx.DefaultFrequency, "frequency in Hz")
	cmd.Flags().String(config.KeyColour1, herx.DefaultColour1, "first colour (#RRGGBB)")
	cmd.Flags().String(config.KeyColour2, herx.DefaultColour2, "second colour (#RRGGBB)")
	cmd.Flags().String(config.KeyBase, herx.DefaultBase, "base colour (#RRGGBB)")
}

// loadConfig resolves and validates the configuration for cmd.
func loadConfig(cmd *cobra.Command, logger hclog.Logger) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		logger.Debug("loaded config file", "path", cfg.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// evaluate runs the formula for cfg and logs the intermediate values.
func evaluate(cfg *config.Config, logger hclog.Logger) (*herx.Result, error) {
	logger.Debug("evaluating",
		"frequency", cfg.Frequency,
		"colour1", cfg.Colour1,
		"colour2", cfg.Colour2,
		"base", cfg.Base)

	res, err := herx.Evaluate(cfg.Input())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate bpm: %w", err)
	}

	logger.Debug("evaluated",
		"pdo", res.PDO,
		"octave", res.Octave,
		"tr", res.TR,
		"similar", res.Similar.Hex(),
		"ir", res.IR,
		"k", res.K,
		"bpm", res.BPM)

	return res, nil
}

// runBPM executes the bpm command.
func runBPM(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	res, err := evaluate(cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	quiet, _ := cmd.Flags().GetBool("quiet")
	preview := !quiet && wantPreview(cfg.Preview, out)

	switch cfg.Format {
	case config.FormatJSON:
		return writeJSON(out, res)
	case config.FormatTable:
		fmt.Fprint(out, formatTable(res, preview))
	default:
		fmt.Fprintf(out, "Calculated BPM: %d\n", res.BPM)
		if preview {
			fmt.Fprintln(out, previewLine(res))
		}
	}

	return nil
}

// bpmJSON is the JSON form of an evaluation.
type bpmJSON struct {
	Frequency float64 `json:"frequency"`
	Colour1   string  `json:"colour1"`
	Colour2   string  `json:"colour2"`
	Base      string  `json:"base"`
	Similar   string  `json:"similar"`
	PDO       float64 `json:"pdo"`
	Octave    int     `json:"octave"`
	TR        int     `json:"tr"`
	IR        float64 `json:"ir"`
	K         float64 `json:"k"`
	BPM       int     `json:"bpm"`
}

func writeJSON(out io.Writer, res *herx.Result) error {
	data, err := json.MarshalIndent(bpmJSON{
		Frequency: res.Frequency,
		Colour1:   res.Colour1.Hex(),
		Colour2:   res.Colour2.Hex(),
		Base:      res.Base.Hex(),
		Similar:   res.Similar.Hex(),
		PDO:       res.PDO,
		Octave:    res.Octave,
		TR:        res.TR,
		IR:        res.IR,
		K:         res.K,
		BPM:       res.BPM,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	fmt.Fprintln(out, string(data))
	return nil
}

// formatTable renders each step of the evaluation as a table row.
func formatTable(res *herx.Result, preview bool) string {
	headers := []string{"Step", "Formula", "Value"}
	if preview {
		headers = append(headers, "Colour")
	}

	table := NewTable(headers)
	table.AlignRight(2)

	swatch := func(c colour.RGB) string {
		if !preview {
			return ""
		}
		return colour.ColourPreview(c, 4)
	}

	table.AddRow([]string{"pdo", "distance(colour1, colour2)", formatFloat(res.PDO), swatch(res.Colour1) + swatch(res.Colour2)})
	table.AddRow([]string{"tr", fmt.Sprintf("octave(%s Hz) * 36 = %d * 36", strconv.FormatFloat(res.Frequency, 'f', -1, 64), res.Octave), strconv.Itoa(res.TR)})
	table.AddRow([]string{"similar", "base darkened by pdo/sqrt(3)", res.Similar.Hex(), swatch(res.Base) + swatch(res.Similar)})
	table.AddRow([]string{"ir", "distance(base, similar)", formatFloat(res.IR)})
	table.AddRow([]string{"k", "frequency / (pdo + tr + ir)", formatFloat(res.K)})
	table.AddRow([]string{"bpm", "round(k * 100)", strconv.Itoa(res.BPM)})

	return table.Render()
}

// previewLine renders the four colours of res as labelled swatches.
func previewLine(res *herx.Result) string {
	parts := make([]string, 0, 4)
	for _, c := range []colour.RGB{res.Colour1, res.Colour2, res.Base, res.Similar} {
		parts = append(parts, colour.ColourPreviewWithText(c, c.Hex(), previewWidth))
	}
	return strings.Join(parts, " ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
