package colour

import "errors"

var (
	// ErrFormat is returned when a hex colour string is malformed.
	ErrFormat = errors.New("invalid hex colour")

	// ErrRange is returned when a channel value falls outside [0, 255].
	ErrRange = errors.New("colour channel out of range")
)
