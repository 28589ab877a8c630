package sorters

import (
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

func checkSortArguments(sequence common.WordSequence, comparator common.Comparator) error {
	if check.IfNil(sequence) {
		return common.ErrNilWordSequence
	}
	if check.IfNil(comparator) {
		return common.ErrNilComparator
	}

	return nil
}
