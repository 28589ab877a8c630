package testscommon

import "strings"

// ComparatorStub -
type ComparatorStub struct {
	CompareCalled func(a string, b string) (int, error)
}

// Compare -
func (stub *ComparatorStub) Compare(a string, b string) (int, error) {
	if stub.CompareCalled != nil {
		return stub.CompareCalled(a, b)
	}

	return strings.Compare(a, b), nil
}

// IsInterfaceNil -
func (stub *ComparatorStub) IsInterfaceNil() bool {
	return stub == nil
}
