package wordlist

import "errors"

// ErrIndexOutOfBounds signals that an index outside the sequence has been provided
var ErrIndexOutOfBounds = errors.New("index out of bounds")
