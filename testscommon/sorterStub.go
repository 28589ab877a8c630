package testscommon

import (
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

// SorterStub -
type SorterStub struct {
	SortCalled func(sequence common.WordSequence, comparator common.Comparator) error
	NameCalled func() string
}

// Sort -
func (stub *SorterStub) Sort(sequence common.WordSequence, comparator common.Comparator) error {
	if stub.SortCalled != nil {
		return stub.SortCalled(sequence, comparator)
	}

	return nil
}

// Name -
func (stub *SorterStub) Name() string {
	if stub.NameCalled != nil {
		return stub.NameCalled()
	}

	return "SorterStub"
}

// IsInterfaceNil -
func (stub *SorterStub) IsInterfaceNil() bool {
	return stub == nil
}
