package sorters

import (
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

const quickSorterName = "QuickSorter"

// quickSorter sorts using a recursive quicksort with a Lomuto partition. The sort is not stable.
type quickSorter struct {
}

// NewQuickSorter creates a new quicksort based sorter
func NewQuickSorter() *quickSorter {
	return &quickSorter{}
}

// Sort orders the provided sequence in place. A comparator error aborts the sort and leaves the
// sequence partially ordered.
func (qs *quickSorter) Sort(sequence common.WordSequence, comparator common.Comparator) error {
	err := checkSortArguments(sequence, comparator)
	if err != nil {
		return err
	}

	words := sequence.Words()

	return quickSort(words, comparator, 0, len(words)-1)
}

func quickSort(words []string, comparator common.Comparator, start int, end int) error {
	if start >= end {
		return nil
	}

	pivotIndex, err := partition(words, comparator, start, end)
	if err != nil {
		return err
	}

	err = quickSort(words, comparator, start, pivotIndex-1)
	if err != nil {
		return err
	}

	return quickSort(words, comparator, pivotIndex+1, end)
}

// partition uses the last word of the range as pivot, moves the words strictly less than the pivot
// to the front of the range and places the pivot right after them
func partition(words []string, comparator common.Comparator, start int, end int) (int, error) {
	pivot := words[end]
	boundary := start
	for i := start; i < end; i++ {
		result, err := comparator.Compare(words[i], pivot)
		if err != nil {
			return 0, err
		}
		if result < 0 {
			words[i], words[boundary] = words[boundary], words[i]
			boundary++
		}
	}

	words[boundary], words[end] = words[end], words[boundary]

	return boundary, nil
}

// Name returns the name of the sorter
func (qs *quickSorter) Name() string {
	return quickSorterName
}

// IsInterfaceNil returns true if there is no value under the interface
func (qs *quickSorter) IsInterfaceNil() bool {
	return qs == nil
}
