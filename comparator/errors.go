package comparator

import "errors"

// ErrInvalidCharacter signals that a compared word contains a character missing from the ordering
var ErrInvalidCharacter = errors.New("invalid character")
