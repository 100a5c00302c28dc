// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/herx/internal/cli"
	"github.com/jmylchreest/herx/internal/colour"
	"github.com/jmylchreest/herx/internal/herx"
)

// setupTests runs the test from an empty directory with no HERX_* overrides.
func setupTests(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	// os.Chdir + Cleanup: t.Chdir requires Go 1.24.
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"FREQUENCY", "COLOUR1", "COLOUR2", "BASE", "FORMAT", "PREVIEW"} {
		t.Setenv("HERX_"+key, "")
	}
	return dir
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestBPMCommand(t *testing.T) {
	setupTests(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "reference input",
			args: []string{"bpm"},
			want: "Calculated BPM: 83\n",
		},
		{
			name: "explicit reference input",
			args: []string{"bpm", "--frequency", "440", "--colour1", "#F2000F", "--colour2", "#C0C0C0", "--base", "#5A3442"},
			want: "Calculated BPM: 83\n",
		},
		{
			name: "one octave up",
			args: []string{"bpm", "--frequency", "880"},
			want: "Calculated BPM: 155\n",
		},
		{
			name: "colours without hash",
			args: []string{"bpm", "--colour1", "f2000f", "--colour2", "c0c0c0", "--base", "5a3442"},
			want: "Calculated BPM: 83\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestBPMCommandErrors(t *testing.T) {
	setupTests(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "zero frequency", args: []string{"bpm", "--frequency", "0"}, want: herx.ErrDomain},
		{name: "negative frequency", args: []string{"bpm", "--frequency=-5"}, want: herx.ErrDomain},
		{name: "malformed colour", args: []string{"bpm", "--colour1", "#F2000"}, want: colour.ErrFormat},
		{name: "malformed base", args: []string{"bpm", "--base", "#ZZ3442"}, want: colour.ErrFormat},
		{
			name: "zero denominator",
			args: []string{"bpm", "--frequency", "30", "--colour1", "#101010", "--colour2", "#101010"},
			want: herx.ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.want)
			}
			if out != "" {
				t.Errorf("expected no output on error, got %q", out)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		if _, _, err := run(t, "bpm", "--format", "xml"); err == nil {
			t.Fatal("expected error for unknown format")
		}
	})

	t.Run("unexpected argument", func(t *testing.T) {
		if _, _, err := run(t, "bpm", "440"); err == nil {
			t.Fatal("expected error for positional argument")
		}
	})
}

func TestBPMCommandJSON(t *testing.T) {
	setupTests(t)

	out, _, err := run(t, "bpm", "-f", "json")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	var got struct {
		Frequency float64 `json:"frequency"`
		Colour1   string  `json:"colour1"`
		Similar   string  `json:"similar"`
		Octave    int     `json:"octave"`
		TR        int     `json:"tr"`
		BPM       int     `json:"bpm"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	if got.BPM != 83 || got.TR != 144 || got.Octave != 4 {
		t.Errorf("unexpected result: %+v", got)
	}
	if got.Colour1 != "#f2000f" || got.Similar != "#000000" {
		t.Errorf("unexpected colours: %+v", got)
	}
}

func TestBPMCommandTable(t *testing.T) {
	setupTests(t)

	out, _, err := run(t, "bpm", "--format", "table", "--preview", "never")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	for _, want := range []string{"Step", "pdo", "265.8816", "144", "#000000", "123.1260", "0.8255", "83"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestBPMCommandPreview(t *testing.T) {
	setupTests(t)

	out, _, err := run(t, "bpm", "--preview", "always")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected result and preview lines, got %q", out)
	}
	if lines[0] != "Calculated BPM: 83" {
		t.Errorf("first line = %q", lines[0])
	}
	for _, hex := range []string{"#f2000f", "#c0c0c0", "#5a3442", "#000000"} {
		if !strings.Contains(lines[1], hex) {
			t.Errorf("preview missing %s: %q", hex, lines[1])
		}
	}

	// Quiet suppresses the preview but not the result.
	out, _, err = run(t, "bpm", "--preview", "always", "--quiet")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if out != "Calculated BPM: 83\n" {
		t.Errorf("quiet output = %q", out)
	}
}

func TestBPMCommandEnvironmentAndConfig(t *testing.T) {
	dir := setupTests(t)

	t.Run("environment", func(t *testing.T) {
		t.Setenv("HERX_FREQUENCY", "880")

		out, _, err := run(t, "bpm")
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if out != "Calculated BPM: 155\n" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(path, []byte("frequency: 880\nformat: json\n"), 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		out, _, err := run(t, "bpm", "--config", path, "--format", "text")
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if out != "Calculated BPM: 155\n" {
			t.Errorf("output = %q", out)
		}
	})
}

func TestBPMCommandMalformedFrequency(t *testing.T) {
	setupTests(t)
	t.Setenv("HERX_FREQUENCY", "440Hz")

	_, _, err := run(t, "bpm")
	if err == nil {
		t.Fatal("expected error for malformed frequency")
	}
	if errors.Is(err, herx.ErrDomain) {
		t.Errorf("malformed frequency reported as a domain error: %v", err)
	}
	if !strings.Contains(err.Error(), "440Hz") {
		t.Errorf("error = %v, want it to name the bad value", err)
	}
}

func TestBPMCommandVerbose(t *testing.T) {
	setupTests(t)

	out, errOut, err := run(t, "bpm", "-v")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if out != "Calculated BPM: 83\n" {
		t.Errorf("output = %q", out)
	}
	for _, want := range []string{"herx", "pdo=", "bpm=83"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("verbose log missing %q:\n%s", want, errOut)
		}
	}

	_, errOut, err = run(t, "bpm")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if strings.Contains(errOut, "pdo=") {
		t.Errorf("expected no debug logs without --verbose, got:\n%s", errOut)
	}
}

func TestTRCommand(t *testing.T) {
	setupTests(t)

	tests := []struct {
		arg  string
		want string
	}{
		{"440", "TR: 144 (octave 4)\n"},
		{"880", "TR: 180 (octave 5)\n"},
		{"220", "TR: 108 (octave 3)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, _, err := run(t, "tr", tt.arg)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	if _, _, err := run(t, "tr", "0"); !errors.Is(err, herx.ErrDomain) {
		t.Errorf("tr 0 error = %v, want ErrDomain", err)
	}
	if _, _, err := run(t, "tr", "loud"); err == nil {
		t.Error("expected error for non-numeric frequency")
	}
}

func TestDistanceCommand(t *testing.T) {
	setupTests(t)

	out, _, err := run(t, "distance", "#F2000F", "#C0C0C0")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if out != "Distance: 265.8816\n" {
		t.Errorf("output = %q", out)
	}

	if _, _, err := run(t, "distance", "#F2000F", "grey"); !errors.Is(err, colour.ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestSimilarCommand(t *testing.T) {
	setupTests(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "darker clamps", args: []string{"similar", "#5A3442", "265.88"}, want: "#000000\n"},
		{name: "lighter", args: []string{"similar", "#000000", "17.5", "--lighter"}, want: "#0a0a0a\n"},
		{name: "zero distance", args: []string{"similar", "ABCDEF", "0"}, want: "#abcdef\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}

	if _, _, err := run(t, "similar", "#5A344", "10"); !errors.Is(err, colour.ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestSwatchCommand(t *testing.T) {
	dir := setupTests(t)
	path := filepath.Join(dir, "swatch.png")

	if _, _, err := run(t, "swatch", "--output", path, "--width", "40", "--height", "20", "--no-labels"); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("swatch not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("swatch is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 20 {
		t.Errorf("swatch size = %dx%d, want 160x20", b.Dx(), b.Dy())
	}
	if got := colour.ToRGB(img.At(0, 0)).Hex(); got != "#f2000f" {
		t.Errorf("first block = %s, want #f2000f", got)
	}

	if _, _, err := run(t, "swatch"); err == nil {
		t.Error("expected error when --output is missing")
	}
}

func TestSwatchCommandInvalidSize(t *testing.T) {
	dir := setupTests(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "zero width", args: []string{"--width", "0"}},
		{name: "negative height", args: []string{"--height", "-1"}},
		{name: "huge width", args: []string{"--width", "3000000000000000000", "--height", "2"}},
		{name: "block over limit", args: []string{"--height", "4097"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "swatch.png")
			args := append([]string{"swatch", "-o", path}, tt.args...)

			if _, _, err := run(t, args...); err == nil {
				t.Fatal("expected error for invalid block size")
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("output file left behind after failed run (stat err: %v)", err)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	setupTests(t)

	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "herx version") {
		t.Errorf("output = %q", out)
	}
}
