package testscommon

// RankProviderStub -
type RankProviderStub struct {
	IsValidCalled func(c rune) bool
	RankCalled    func(c rune) int
}

// IsValid -
func (stub *RankProviderStub) IsValid(c rune) bool {
	if stub.IsValidCalled != nil {
		return stub.IsValidCalled(c)
	}

	return stub.Rank(c) >= 0
}

// Rank -
func (stub *RankProviderStub) Rank(c rune) int {
	if stub.RankCalled != nil {
		return stub.RankCalled(c)
	}

	return int(c)
}

// IsInterfaceNil -
func (stub *RankProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
