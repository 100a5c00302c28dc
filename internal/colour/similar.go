package colour

import "math"

// FindSimilar shifts every channel of base by the same amount so the result
// sits roughly distance units away along the grey diagonal.
// The per-channel shift is distance/sqrt(3) truncated towards zero, negated
// when lighter is false. Each channel is clamped to [0, 255].
func FindSimilar(base RGB, distance float64, lighter bool) RGB {
	step := distance / math.Sqrt(3)
	if math.IsNaN(step) {
		step = 0
	}
	// Any shift beyond a full channel saturates, so bound it before converting.
	adjustment := int(math.Max(-255, math.Min(255, step)))
	if !lighter {
		adjustment = -adjustment
	}

	return RGB{
		R: clampChannel(int(base.R) + adjustment),
		G: clampChannel(int(base.G) + adjustment),
		B: clampChannel(int(base.B) + adjustment),
	}
}

// FindSimilarHex is FindSimilar for hex colour strings.
func FindSimilarHex(baseHex string, distance float64, lighter bool) (string, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return "", err
	}
	return FindSimilar(base, distance, lighter).Hex(), nil
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
