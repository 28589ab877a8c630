package comparator

import (
	"fmt"
	"unicode/utf8"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

// alphabetComparator compares words character by character using the ranks of a custom ordering
type alphabetComparator struct {
	ordering common.RankProvider
}

// NewAlphabetComparator creates a comparator that uses the provided ordering to compare characters
func NewAlphabetComparator(ordering common.RankProvider) (*alphabetComparator, error) {
	if check.IfNil(ordering) {
		return nil, common.ErrNilRankProvider
	}

	return &alphabetComparator{
		ordering: ordering,
	}, nil
}

// Compare returns a negative value if a sorts before b, a positive value if a sorts after b and 0 if they are equal.
// The first position where the ranks differ decides the result. If one word is a prefix of the other, the shorter
// one sorts first. Both characters at a position are validated before their ranks are compared, so an error is
// returned for words containing unknown characters even if the words are identical.
func (ac *alphabetComparator) Compare(a string, b string) (int, error) {
	remainingA := a
	remainingB := b
	for len(remainingA) > 0 && len(remainingB) > 0 {
		charA, sizeA := utf8.DecodeRuneInString(remainingA)
		charB, sizeB := utf8.DecodeRuneInString(remainingB)

		if !ac.ordering.IsValid(charA) {
			return 0, fmt.Errorf("%w %q in word %q", ErrInvalidCharacter, charA, a)
		}
		if !ac.ordering.IsValid(charB) {
			return 0, fmt.Errorf("%w %q in word %q", ErrInvalidCharacter, charB, b)
		}

		rankA := ac.ordering.Rank(charA)
		rankB := ac.ordering.Rank(charB)
		if rankA < rankB {
			return -1, nil
		}
		if rankA > rankB {
			return 1, nil
		}

		remainingA = remainingA[sizeA:]
		remainingB = remainingB[sizeB:]
	}

	switch {
	case len(remainingA) == len(remainingB):
		return 0, nil
	case len(remainingA) == 0:
		return -1, nil
	default:
		return 1, nil
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (ac *alphabetComparator) IsInterfaceNil() bool {
	return ac == nil
}
