package herx

import (
	"fmt"
	"math"
)

const (
	// ReferencePitch is concert A (A4) in Hertz.
	ReferencePitch = 440.0

	// OctaveOffset places ReferencePitch in octave 4.
	OctaveOffset = 4

	// ChromaticSteps is the number of semitones in an octave.
	ChromaticSteps = 12

	// HexChannels is the number of channels in a hex colour.
	HexChannels = 3
)

// Octave returns the octave number of frequency, with ReferencePitch in octave 4.
func Octave(frequency float64) (int, error) {
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return 0, fmt.Errorf("%w: got %v", ErrDomain, frequency)
	}
	return int(math.Floor(math.Log2(frequency/ReferencePitch) + OctaveOffset)), nil
}

// CalculateTR returns the octave scalar of frequency:
// the octave number times ChromaticSteps times HexChannels.
func CalculateTR(frequency float64) (int, error) {
	octave, err := Octave(frequency)
	if err != nil {
		return 0, err
	}
	return octave * ChromaticSteps * HexChannels, nil
}
