package sorters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSorter(t *testing.T) {
	t.Parallel()

	t.Run("unknown type should error", func(t *testing.T) {
		t.Parallel()

		sorter, err := NewSorter("bogo")
		assert.Nil(t, sorter)
		assert.True(t, errors.Is(err, ErrUnknownSorterType))
		assert.Contains(t, err.Error(), "bogo")
	})
	t.Run("known types should work", func(t *testing.T) {
		t.Parallel()

		expectedNames := map[string]string{
			QuickSortType:     quickSorterName,
			MergeSortType:     mergeSorterName,
			InsertionSortType: insertionSorterName,
			" Quick ":         quickSorterName,
			"MERGE":           mergeSorterName,
		}
		for sorterType, name := range expectedNames {
			sorter, err := NewSorter(sorterType)
			require.Nil(t, err)
			assert.Equal(t, name, sorter.Name())
		}
	})
}

func TestNewSorters(t *testing.T) {
	t.Parallel()

	t.Run("empty list should error", func(t *testing.T) {
		t.Parallel()

		list, err := NewSorters(nil)
		assert.Nil(t, list)
		assert.Equal(t, ErrNoSorterTypes, err)
	})
	t.Run("one unknown type should error", func(t *testing.T) {
		t.Parallel()

		list, err := NewSorters([]string{QuickSortType, "heap"})
		assert.Nil(t, list)
		assert.True(t, errors.Is(err, ErrUnknownSorterType))
	})
	t.Run("should keep the configured order", func(t *testing.T) {
		t.Parallel()

		list, err := NewSorters([]string{InsertionSortType, QuickSortType, MergeSortType})
		require.Nil(t, err)
		require.Equal(t, 3, len(list))
		assert.Equal(t, insertionSorterName, list[0].Name())
		assert.Equal(t, quickSorterName, list[1].Name())
		assert.Equal(t, mergeSorterName, list[2].Name())
	})
}
