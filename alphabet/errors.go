package alphabet

import "errors"

// ErrNilOrdering signals that a nil characters ordering has been provided
var ErrNilOrdering = errors.New("nil ordering")

// ErrDuplicateCharacter signals that the same character was found more than once in an ordering
var ErrDuplicateCharacter = errors.New("duplicate character in ordering")
