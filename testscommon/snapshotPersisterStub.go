package testscommon

import (
	"github.com/multiversx/mx-chain-sortbench-go/common"
)

// SnapshotPersisterStub -
type SnapshotPersisterStub struct {
	PersistCalled func(name string, sequence common.WordSequence) error
}

// Persist -
func (stub *SnapshotPersisterStub) Persist(name string, sequence common.WordSequence) error {
	if stub.PersistCalled != nil {
		return stub.PersistCalled(name, sequence)
	}

	return nil
}

// IsInterfaceNil -
func (stub *SnapshotPersisterStub) IsInterfaceNil() bool {
	return stub == nil
}
