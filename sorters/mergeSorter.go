package sorters

import (
	"github.com/multiversx/mx-chain-sortbench-go/common"
	"golang.org/x/exp/slices"
)

const mergeSorterName = "MergeSorter"

// mergeSorter sorts using a recursive top-down merge sort. The sort is stable.
type mergeSorter struct {
}

// NewMergeSorter creates a new merge sort based sorter
func NewMergeSorter() *mergeSorter {
	return &mergeSorter{}
}

// Sort orders the provided sequence in place. A comparator error aborts the sort, the sequence
// remains a permutation of its initial content.
func (ms *mergeSorter) Sort(sequence common.WordSequence, comparator common.Comparator) error {
	err := checkSortArguments(sequence, comparator)
	if err != nil {
		return err
	}

	words := sequence.Words()

	return mergeSort(words, comparator, 0, len(words)-1)
}

func mergeSort(words []string, comparator common.Comparator, start int, end int) error {
	if start >= end {
		return nil
	}

	mid := start + (end-start)/2
	err := mergeSort(words, comparator, start, mid)
	if err != nil {
		return err
	}
	err = mergeSort(words, comparator, mid+1, end)
	if err != nil {
		return err
	}

	return merge(words, comparator, start, mid, end)
}

// merge combines the sorted ranges [start, mid] and [mid+1, end]. On ties the word from the left
// range is taken first.
func merge(words []string, comparator common.Comparator, start int, mid int, end int) error {
	left := slices.Clone(words[start : mid+1])
	right := slices.Clone(words[mid+1 : end+1])

	leftIdx := 0
	rightIdx := 0
	k := start
	var err error
	for leftIdx < len(left) && rightIdx < len(right) {
		var result int
		result, err = comparator.Compare(left[leftIdx], right[rightIdx])
		if err != nil {
			break
		}

		if result <= 0 {
			words[k] = left[leftIdx]
			leftIdx++
		} else {
			words[k] = right[rightIdx]
			rightIdx++
		}
		k++
	}

	k += copy(words[k:], left[leftIdx:])
	copy(words[k:], right[rightIdx:])

	return err
}

// Name returns the name of the sorter
func (ms *mergeSorter) Name() string {
	return mergeSorterName
}

// IsInterfaceNil returns true if there is no value under the interface
func (ms *mergeSorter) IsInterfaceNil() bool {
	return ms == nil
}
