package colour

import "math"

// Distance calculates the Euclidean distance between two colours in RGB space.
// The result is symmetric, non-negative and zero only for identical colours.
func Distance(a, b RGB) float64 {
	ac, bc := a.Channels(), b.Channels()

	var sum float64
	for i := range ac {
		d := float64(ac[i] - bc[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
