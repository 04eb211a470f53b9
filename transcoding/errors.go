package transcoding

import (
	"errors"
)

// ErrAlphabetTooSmall is returned by NewAlphabet when fewer than two
// chars are given; a base-b positional notation needs base >= 2.
var ErrAlphabetTooSmall = errors.New("transcoding: alphabet needs at least 2 distinct characters")

// ErrAlphabetNotDistinct is returned by NewAlphabet when a character
// repeats.
var ErrAlphabetNotDistinct = errors.New("transcoding: alphabet characters must be distinct")
