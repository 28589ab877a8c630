package common

// Comparator defines the behavior of a component able to order two words
type Comparator interface {
	Compare(a string, b string) (int, error)
	IsInterfaceNil() bool
}

// RankProvider defines a character ordering that can be queried for the rank of each character
type RankProvider interface {
	IsValid(c rune) bool
	Rank(c rune) int
	IsInterfaceNil() bool
}

// WordSequence defines a fixed length sequence of words that can be mutated in place
type WordSequence interface {
	Len() int
	Get(index int) (string, error)
	Set(index int, word string) error
	Swap(i int, j int) error
	Words() []string
	Clone() WordSequence
	IsInterfaceNil() bool
}

// Sorter defines an algorithm able to sort a word sequence in place
type Sorter interface {
	Sort(sequence WordSequence, comparator Comparator) error
	Name() string
	IsInterfaceNil() bool
}

// SnapshotPersister defines the component able to save the sorted words produced by a benchmark run
type SnapshotPersister interface {
	Persist(name string, sequence WordSequence) error
	IsInterfaceNil() bool
}
