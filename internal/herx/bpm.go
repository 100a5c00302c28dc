// Package herx evaluates the Herxheimer BPM formula.
//
// The formula combines the RGB distance between two colours, an octave
// scalar derived from a frequency and the distance between a base colour
// and its darker neighbour:
//
//	pdo = Distance(colour1, colour2)
//	tr  = Octave(frequency) * 36
//	ir  = Distance(base, FindSimilar(base, pdo, darker))
//	bpm = round(frequency / (pdo + tr + ir) * 100)
//
// Every function in this package is pure and safe for concurrent use.
package herx

import (
	"fmt"
	"math"

	"github.com/jmylchreest/herx/internal/colour"
)

// Reference inputs used when none are supplied.
const (
	DefaultFrequency = ReferencePitch
	DefaultColour1   = "#F2000F"
	DefaultColour2   = "#C0C0C0"
	DefaultBase      = "#5A3442"
)

// Input holds the four values the formula is evaluated over.
type Input struct {
	Frequency float64
	Colour1   string
	Colour2   string
	Base      string
}

// DefaultInput returns the reference input.
func DefaultInput() Input {
	return Input{
		Frequency: DefaultFrequency,
		Colour1:   DefaultColour1,
		Colour2:   DefaultColour2,
		Base:      DefaultBase,
	}
}

// Result holds the outcome of an evaluation along with every intermediate value.
type Result struct {
	Frequency float64    `json:"frequency"`
	Colour1   colour.RGB `json:"-"`
	Colour2   colour.RGB `json:"-"`
	Base      colour.RGB `json:"-"`
	Similar   colour.RGB `json:"-"`

	// PDO is the distance between Colour1 and Colour2.
	PDO float64 `json:"pdo"`
	// Octave is the octave number of Frequency.
	Octave int `json:"octave"`
	// TR is the octave scalar.
	TR int `json:"tr"`
	// IR is the distance between Base and Similar.
	IR float64 `json:"ir"`
	// K is Frequency divided by the combined denominator.
	K float64 `json:"k"`
	// BPM is K * 100 rounded half to even.
	BPM int `json:"bpm"`
}

// Evaluate runs the formula over in and returns all intermediate values.
func Evaluate(in Input) (*Result, error) {
	c1, err := colour.ParseHex(in.Colour1)
	if err != nil {
		return nil, fmt.Errorf("colour1: %w", err)
	}
	c2, err := colour.ParseHex(in.Colour2)
	if err != nil {
		return nil, fmt.Errorf("colour2: %w", err)
	}
	base, err := colour.ParseHex(in.Base)
	if err != nil {
		return nil, fmt.Errorf("base colour: %w", err)
	}

	octave, err := Octave(in.Frequency)
	if err != nil {
		return nil, err
	}
	tr := octave * ChromaticSteps * HexChannels

	pdo := colour.Distance(c1, c2)
	similar := colour.FindSimilar(base, pdo, false)
	ir := colour.Distance(base, similar)

	denominator := pdo + float64(tr) + ir
	if denominator == 0 {
		return nil, fmt.Errorf("%w: pdo=%v tr=%d ir=%v", ErrDivisionByZero, pdo, tr, ir)
	}
	k := in.Frequency / denominator

	scaled := math.RoundToEven(k * 100)
	if math.Abs(scaled) >= math.MaxInt {
		return nil, fmt.Errorf("bpm %v does not fit in an int", scaled)
	}

	return &Result{
		Frequency: in.Frequency,
		Colour1:   c1,
		Colour2:   c2,
		Base:      base,
		Similar:   similar,
		PDO:       pdo,
		Octave:    octave,
		TR:        tr,
		IR:        ir,
		K:         k,
		BPM:       int(scaled),
	}, nil
}

// CalculateBPM evaluates the formula and returns only the rounded result.
func CalculateBPM(frequency float64, colour1, colour2, base string) (int, error) {
	res, err := Evaluate(Input{
		Frequency: frequency,
		Colour1:   colour1,
		Colour2:   colour2,
		Base:      base,
	})
	if err != nil {
		return 0, err
	}
	return res.BPM, nil
}
