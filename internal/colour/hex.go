package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a hex colour string into an RGB struct.
// Accepts #RRGGBB or RRGGBB in any case. Only one leading # is stripped.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	// Validate length.
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w %q: expected 6 hex characters, got %d", ErrFormat, hex, len(s))
	}

	var channels [3]uint8
	for i := range channels {
		// ParseUint accepts a leading sign, so check the digits ourselves.
		pair := s[i*2 : i*2+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return RGB{}, fmt.Errorf("%w %q: non-hex character in %q", ErrFormat, hex, pair)
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w %q: %w", ErrFormat, hex, err)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for constants and tests.
func MustParseHex(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return rgb
}

// NormaliseHex returns the canonical form of a hex colour: lowercase with a leading #.
func NormaliseHex(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// HexFromInts encodes three channel values as a hex colour string.
// Values outside [0, 255] are rejected with ErrRange rather than mis-formatted.
func HexFromInts(r, g, b int) (string, error) {
	rgb, err := NewRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
