package colour

import (
	"errors"
	"math"
	"testing"
)

func TestFindSimilar(t *testing.T) {
	tests := []struct {
		name     string
		base     RGB
		distance float64
		lighter  bool
		want     RGB
	}{
		{
			name:     "zero distance is identity",
			base:     RGB{R: 90, G: 52, B: 66},
			distance: 0,
			lighter:  true,
			want:     RGB{R: 90, G: 52, B: 66},
		},
		{
			name:     "lighter",
			base:     RGB{R: 10, G: 20, B: 30},
			distance: 17.5, // 17.5/sqrt(3) truncates to 10
			lighter:  true,
			want:     RGB{R: 20, G: 30, B: 40},
		},
		{
			name:     "darker",
			base:     RGB{R: 100, G: 100, B: 100},
			distance: 17.4, // 17.4/sqrt(3) truncates to 10
			lighter:  false,
			want:     RGB{R: 90, G: 90, B: 90},
		},
		{
			name:     "darker clamps at zero",
			base:     RGB{R: 90, G: 52, B: 66},
			distance: math.Sqrt(70693),
			lighter:  false,
			want:     RGB{},
		},
		{
			name:     "lighter clamps at 255",
			base:     RGB{R: 250, G: 0, B: 128},
			distance: 100,
			lighter:  true,
			want:     RGB{R: 255, G: 57, B: 185},
		},
		{
			name:     "infinite distance saturates",
			base:     RGB{R: 1, G: 2, B: 3},
			distance: math.Inf(1),
			lighter:  true,
			want:     RGB{R: 255, G: 255, B: 255},
		},
		{
			name:     "NaN distance leaves colour unchanged",
			base:     RGB{R: 1, G: 2, B: 3},
			distance: math.NaN(),
			lighter:  true,
			want:     RGB{R: 1, G: 2, B: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilar(tt.base, tt.distance, tt.lighter)
			if got != tt.want {
				t.Errorf("FindSimilar() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindSimilarHex(t *testing.T) {
	got, err := FindSimilarHex("#5A3442", math.Sqrt(70693), false)
	if err != nil {
		t.Fatalf("FindSimilarHex() unexpected error: %v", err)
	}
	if got != "#000000" {
		t.Errorf("FindSimilarHex() = %q, want %q", got, "#000000")
	}

	if _, err := FindSimilarHex("#5A344", 10, true); !errors.Is(err, ErrFormat) {
		t.Errorf("FindSimilarHex() error = %v, want ErrFormat", err)
	}
}

func TestFindSimilarStaysInRange(t *testing.T) {
	bases := []RGB{{}, {R: 255, G: 255, B: 255}, {R: 0, G: 128, B: 255}}
	for _, base := range bases {
		for d := -500.0; d <= 500; d += 37.5 {
			for _, lighter := range []bool{true, false} {
				got := FindSimilar(base, d, lighter)
				// uint8 already bounds the channels; check the hex stays six digits.
				if hex := got.Hex(); len(hex) != 7 {
					t.Errorf("FindSimilar(%v, %v, %v) hex = %q", base, d, lighter, hex)
				}
			}
		}
	}
}
