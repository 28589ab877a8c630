package sorters

import (
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

const insertionSorterName = "InsertionSorter"

// insertionSorter sorts using an iterative insertion sort. The sort is stable.
type insertionSorter struct {
}

// NewInsertionSorter creates a new insertion sort based sorter
func NewInsertionSorter() *insertionSorter {
	return &insertionSorter{}
}

// Sort orders the provided sequence in place. A comparator error aborts the sort, the sequence
// remains a permutation of its initial content.
func (is *insertionSorter) Sort(sequence common.WordSequence, comparator common.Comparator) error {
	err := checkSortArguments(sequence, comparator)
	if err != nil {
		return err
	}

	words := sequence.Words()
	for i := 1; i < len(words); i++ {
		current := words[i]
		j := i - 1
		for ; j >= 0; j-- {
			result, errCompare := comparator.Compare(words[j], current)
			if errCompare != nil {
				words[j+1] = current
				return errCompare
			}
			if result <= 0 {
				break
			}

			words[j+1] = words[j]
		}

		words[j+1] = current
	}

	return nil
}

// Name returns the name of the sorter
func (is *insertionSorter) Name() string {
	return insertionSorterName
}

// IsInterfaceNil returns true if there is no value under the interface
func (is *insertionSorter) IsInterfaceNil() bool {
	return is == nil
}
