package alphabet

import (
	"fmt"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("alphabet")

// NotFound is the rank returned for a character that is not part of the ordering
const NotFound = -1

type entry struct {
	character rune
	rank      int
}

// alphabet is an immutable ordering of characters. The lookup table is kept sorted by character
// so the rank of a character is found with a binary search
type alphabet struct {
	lookup []entry
}

// NewAlphabet creates an ordering in which each character is ranked by its index in the provided slice.
// A character that appears more than once is rejected.
func NewAlphabet(ordering []rune) (*alphabet, error) {
	if ordering == nil {
		return nil, ErrNilOrdering
	}

	lookup := make([]entry, len(ordering))
	for i, c := range ordering {
		lookup[i] = entry{
			character: c,
			rank:      i,
		}
	}

	sortEntries(lookup)

	for i := 1; i < len(lookup); i++ {
		if lookup[i-1].character == lookup[i].character {
			return nil, fmt.Errorf("%w: %q at ranks %d and %d",
				ErrDuplicateCharacter, lookup[i].character, lookup[i-1].rank, lookup[i].rank)
		}
	}

	log.Debug("alphabet created", "num characters", len(lookup))

	return &alphabet{
		lookup: lookup,
	}, nil
}

// IsValid returns true if the provided character is part of the ordering
func (a *alphabet) IsValid(c rune) bool {
	return a.Rank(c) != NotFound
}

// Rank returns the position of the provided character in the ordering or NotFound if the character is missing
func (a *alphabet) Rank(c rune) int {
	low := 0
	high := len(a.lookup) - 1
	for low <= high {
		mid := low + (high-low)/2
		current := a.lookup[mid].character

		switch {
		case current < c:
			low = mid + 1
		case current > c:
			high = mid - 1
		default:
			return a.lookup[mid].rank
		}
	}

	return NotFound
}

// Len returns the number of characters in the ordering
func (a *alphabet) Len() int {
	return len(a.lookup)
}

// IsInterfaceNil returns true if there is no value under the interface
func (a *alphabet) IsInterfaceNil() bool {
	return a == nil
}
