package benchmark

import "time"

// Statistics holds the values accumulated during one benchmark run of a sorter
type Statistics struct {
	sorterName       string
	listLength       int
	numRuns          int
	totalWordsSorted int
	totalSortingTime time.Duration
	totalComparisons uint64
}

// NewStatistics creates a statistics holder for the provided sorter with all counters set to 0
func NewStatistics(sorterName string, listLength int) *Statistics {
	return &Statistics{
		sorterName: sorterName,
		listLength: listLength,
	}
}

// AddRun accumulates the result of one sort of the baseline list
func (s *Statistics) AddRun(elapsed time.Duration) {
	s.numRuns++
	s.totalWordsSorted += s.listLength
	s.totalSortingTime += elapsed
}

// SetTotalComparisons sets the number of comparisons made during the whole run
func (s *Statistics) SetTotalComparisons(totalComparisons uint64) {
	s.totalComparisons = totalComparisons
}

// SorterName returns the name of the benchmarked sorter
func (s *Statistics) SorterName() string {
	return s.sorterName
}

// ListLength returns the length of the list sorted in each cycle
func (s *Statistics) ListLength() int {
	return s.listLength
}

// NumRuns returns how many times the list was sorted
func (s *Statistics) NumRuns() int {
	return s.numRuns
}

// TotalWordsSorted returns the total number of words sorted during the benchmark run
func (s *Statistics) TotalWordsSorted() int {
	return s.totalWordsSorted
}

// TotalSortingTime returns the time spent inside the sort calls, measured with the monotonic clock
func (s *Statistics) TotalSortingTime() time.Duration {
	return s.totalSortingTime
}

// TotalComparisons returns the number of comparator invocations made during the benchmark run
func (s *Statistics) TotalComparisons() uint64 {
	return s.totalComparisons
}
