package sorters

import (
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-sortbench-go/common"
)

const (
	// QuickSortType is the configuration name of the quicksort sorter
	QuickSortType = "quick"
	// MergeSortType is the configuration name of the merge sort sorter
	MergeSortType = "merge"
	// InsertionSortType is the configuration name of the insertion sort sorter
	InsertionSortType = "insertion"
)

// NewSorter creates the sorter matching the provided configuration name
func NewSorter(sorterType string) (common.Sorter, error) {
	switch strings.ToLower(strings.TrimSpace(sorterType)) {
	case QuickSortType:
		return NewQuickSorter(), nil
	case MergeSortType:
		return NewMergeSorter(), nil
	case InsertionSortType:
		return NewInsertionSorter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSorterType, sorterType)
	}
}

// NewSorters creates the sorters matching the provided configuration names, keeping their order
func NewSorters(sorterTypes []string) ([]common.Sorter, error) {
	if len(sorterTypes) == 0 {
		return nil, ErrNoSorterTypes
	}

	sorters := make([]common.Sorter, 0, len(sorterTypes))
	for _, sorterType := range sorterTypes {
		sorter, err := NewSorter(sorterType)
		if err != nil {
			return nil, err
		}

		sorters = append(sorters, sorter)
	}

	return sorters, nil
}
