package benchmark

import "errors"

// ErrNegativeWordCount signals that a negative number of words to sort has been provided
var ErrNegativeWordCount = errors.New("negative number of words to sort")

// ErrEmptyWordSequence signals that an empty baseline was provided while a positive number of words has to be sorted
var ErrEmptyWordSequence = errors.New("empty word sequence")

// ErrNilSnapshotPersister signals that a nil snapshot persister has been provided
var ErrNilSnapshotPersister = errors.New("nil snapshot persister")

// ErrNilSortingBenchmark signals that a nil sorting benchmark has been provided
var ErrNilSortingBenchmark = errors.New("nil sorting benchmark")

// ErrNoSorters signals that an empty list of sorters has been provided
var ErrNoSorters = errors.New("no sorters provided")
