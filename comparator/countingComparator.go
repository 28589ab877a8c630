package comparator

import (
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

// countingComparator decorates another comparator and counts how many times it was invoked.
// It is not safe for concurrent use.
type countingComparator struct {
	wrapped common.Comparator
	count   uint64
}

// NewCountingComparator wraps the provided comparator in a new counting comparator
func NewCountingComparator(wrapped common.Comparator) (*countingComparator, error) {
	if check.IfNil(wrapped) {
		return nil, common.ErrNilComparator
	}

	return &countingComparator{
		wrapped: wrapped,
	}, nil
}

// Compare increments the invocations counter and delegates to the wrapped comparator
func (cc *countingComparator) Compare(a string, b string) (int, error) {
	cc.count++

	return cc.wrapped.Compare(a, b)
}

// Count returns the number of comparisons performed since creation or since the last Reset call
func (cc *countingComparator) Count() uint64 {
	return cc.count
}

// Reset sets the invocations counter back to 0
func (cc *countingComparator) Reset() {
	cc.count = 0
}

// IsInterfaceNil returns true if there is no value under the interface
func (cc *countingComparator) IsInterfaceNil() bool {
	return cc == nil
}
