package image

import (
	"errors"
)

var (
	ErrorFormat         = errors.New("Invalid or unsupported Image Format")
	ErrInvalidDimension = errors.New("width and height must be positive")
	ErrUnknownResizer   = errors.New("unknown resizer")
)
