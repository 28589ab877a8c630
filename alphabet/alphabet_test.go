package alphabet

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	t.Parallel()

	t.Run("nil ordering should error", func(t *testing.T) {
		t.Parallel()

		a, err := NewAlphabet(nil)
		assert.True(t, check.IfNil(a))
		assert.Equal(t, ErrNilOrdering, err)
	})
	t.Run("duplicate character should error", func(t *testing.T) {
		t.Parallel()

		a, err := NewAlphabet([]rune{'x', 'y', 'x'})
		assert.True(t, check.IfNil(a))
		assert.True(t, errors.Is(err, ErrDuplicateCharacter))
		assert.Contains(t, err.Error(), "'x'")
		assert.Contains(t, err.Error(), "ranks 0 and 2")
	})
	t.Run("empty ordering should work", func(t *testing.T) {
		t.Parallel()

		a, err := NewAlphabet(make([]rune, 0))
		require.Nil(t, err)
		assert.Equal(t, 0, a.Len())
		assert.False(t, a.IsValid('a'))
		assert.Equal(t, NotFound, a.Rank('a'))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		a, err := NewAlphabet([]rune{'b', 'a', 'c'})
		require.Nil(t, err)
		assert.False(t, check.IfNil(a))
		assert.Equal(t, 3, a.Len())
	})
}

func TestAlphabet_IsInterfaceNil(t *testing.T) {
	t.Parallel()

	var a *alphabet
	assert.True(t, a.IsInterfaceNil())

	a, _ = NewAlphabet([]rune{'a'})
	assert.False(t, a.IsInterfaceNil())
}

func TestAlphabet_RankKeepsInputPositions(t *testing.T) {
	t.Parallel()

	a, _ := NewAlphabet([]rune{'b', 'a', 'c'})

	assert.Equal(t, 0, a.Rank('b'))
	assert.Equal(t, 1, a.Rank('a'))
	assert.Equal(t, 2, a.Rank('c'))
	assert.Equal(t, NotFound, a.Rank('x'))
	assert.Equal(t, NotFound, a.Rank('A'))
}

func TestAlphabet_UnicodeCharacters(t *testing.T) {
	t.Parallel()

	a, err := NewAlphabet([]rune{'ž', 'a', 'ß', '日', 'z'})
	require.Nil(t, err)

	assert.Equal(t, 0, a.Rank('ž'))
	assert.Equal(t, 2, a.Rank('ß'))
	assert.Equal(t, 3, a.Rank('日'))
	assert.True(t, a.IsValid('z'))
	assert.False(t, a.IsValid('本'))
}

func TestAlphabet_IsValidOnRandomPermutations(t *testing.T) {
	t.Parallel()

	characters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	missing := []rune("!@#$%^&*()ăîșț")
	rnd := rand.New(rand.NewSource(37))

	for i := 0; i < 20; i++ {
		permutation := make([]rune, len(characters))
		copy(permutation, characters)
		rnd.Shuffle(len(permutation), func(i, j int) {
			permutation[i], permutation[j] = permutation[j], permutation[i]
		})

		a, err := NewAlphabet(permutation)
		require.Nil(t, err)

		for rank, c := range permutation {
			assert.True(t, a.IsValid(c))
			assert.Equal(t, rank, a.Rank(c))
		}
		for _, c := range missing {
			assert.False(t, a.IsValid(c))
		}
	}
}

func TestSortEntries_IsStable(t *testing.T) {
	t.Parallel()

	entries := []entry{
		{character: 'c', rank: 0},
		{character: 'a', rank: 1},
		{character: 'c', rank: 2},
		{character: 'b', rank: 3},
		{character: 'a', rank: 4},
	}

	sortEntries(entries)

	expected := []entry{
		{character: 'a', rank: 1},
		{character: 'a', rank: 4},
		{character: 'b', rank: 3},
		{character: 'c', rank: 0},
		{character: 'c', rank: 2},
	}
	assert.Equal(t, expected, entries)
}
