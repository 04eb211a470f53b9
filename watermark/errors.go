package watermark

import (
	"errors"
)

// ErrTooLarge is returned when a constructor is given more bytes than
// MaxLength allows.
var ErrTooLarge = errors.New("watermark: payload exceeds maximum length")
