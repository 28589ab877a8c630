package common

import "errors"

// ErrNilComparator signals that a nil comparator has been provided
var ErrNilComparator = errors.New("nil comparator")

// ErrNilWordSequence signals that a nil word sequence has been provided
var ErrNilWordSequence = errors.New("nil word sequence")

// ErrNilSorter signals that a nil sorter has been provided
var ErrNilSorter = errors.New("nil sorter")

// ErrNilRankProvider signals that a nil rank provider has been provided
var ErrNilRankProvider = errors.New("nil rank provider")
