package wordlist

import (
	"fmt"

	"github.com/multiversx/mx-chain-sortbench-go/common"
	"golang.org/x/exp/slices"
)

// WordList is a fixed length list of words that can be mutated in place
type WordList struct {
	words []string
}

// NewWordList creates a word list holding a copy of the provided words
func NewWordList(words []string) *WordList {
	return &WordList{
		words: cloneWords(words),
	}
}

// Len returns the number of words in the list
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Get returns the word found at the provided index
func (wl *WordList) Get(index int) (string, error) {
	err := wl.checkIndex(index)
	if err != nil {
		return "", err
	}

	return wl.words[index], nil
}

// Set replaces the word found at the provided index
func (wl *WordList) Set(index int, word string) error {
	err := wl.checkIndex(index)
	if err != nil {
		return err
	}

	wl.words[index] = word

	return nil
}

// Swap exchanges the words found at the provided indices
func (wl *WordList) Swap(i int, j int) error {
	err := wl.checkIndex(i)
	if err != nil {
		return err
	}
	err = wl.checkIndex(j)
	if err != nil {
		return err
	}

	wl.words[i], wl.words[j] = wl.words[j], wl.words[i]

	return nil
}

// Words returns the backing slice of the list. Changes made through the returned slice are visible in the list.
func (wl *WordList) Words() []string {
	return wl.words
}

// Clone returns an independent list holding the same words
func (wl *WordList) Clone() common.WordSequence {
	return &WordList{
		words: cloneWords(wl.words),
	}
}

func (wl *WordList) checkIndex(index int) error {
	if index < 0 || index >= len(wl.words) {
		return fmt.Errorf("%w, index %d, length %d", ErrIndexOutOfBounds, index, len(wl.words))
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (wl *WordList) IsInterfaceNil() bool {
	return wl == nil
}

func cloneWords(words []string) []string {
	if words == nil {
		return make([]string, 0)
	}

	return slices.Clone(words)
}
